package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDiversifyKeepsMultiset(t *testing.T) {
	now := time.Now()
	cfg := testConfig()

	cands := []PostCandidate{
		basicCandidate(1, 10, "tech", 1*time.Hour, now),
		basicCandidate(2, 10, "tech", 2*time.Hour, now),
		basicCandidate(3, 10, "tech", 3*time.Hour, now),
		basicCandidate(4, 11, "music", 4*time.Hour, now),
		basicCandidate(5, 12, "food", 5*time.Hour, now),
	}
	ranked, err := RankCandidates(now, cands, DefaultWeights(), NewProfile(1), cfg)
	require.NoError(t, err)

	diversified := Diversify(ranked, cands, cfg)
	require.Len(t, diversified, len(ranked))

	seen := make(map[uint64]int)
	for _, r := range diversified {
		seen[r.PostID]++
	}
	for _, r := range ranked {
		require.Equal(t, 1, seen[r.PostID])
	}
}

func TestDiversifyBreaksCategoryRun(t *testing.T) {
	now := time.Now()
	cfg := testConfig()

	// 前三名同品类同作者，第四名是更低分的异类候选
	cands := []PostCandidate{
		basicCandidate(1, 10, "tech", 1*time.Hour, now),
		basicCandidate(2, 10, "tech", 2*time.Hour, now),
		basicCandidate(3, 10, "tech", 3*time.Hour, now),
		basicCandidate(4, 11, "music", 10*time.Hour, now),
	}
	ranked, err := RankCandidates(now, cands, DefaultWeights(), NewProfile(1), cfg)
	require.NoError(t, err)
	require.Equal(t, uint64(1), ranked[0].PostID)

	diversified := Diversify(ranked, cands, cfg)

	// 第二个位置应被前探范围内的异类候选占据
	require.Equal(t, uint64(1), diversified[0].PostID)
	require.Equal(t, uint64(4), diversified[1].PostID)
}

func TestDiversifyNoEligibleCandidateKeepsOrder(t *testing.T) {
	now := time.Now()
	cfg := testConfig()

	// 全部同品类同作者，打散无计可施，保持得分序
	cands := []PostCandidate{
		basicCandidate(1, 10, "tech", 1*time.Hour, now),
		basicCandidate(2, 10, "tech", 2*time.Hour, now),
		basicCandidate(3, 10, "tech", 3*time.Hour, now),
	}
	ranked, err := RankCandidates(now, cands, DefaultWeights(), NewProfile(1), cfg)
	require.NoError(t, err)

	diversified := Diversify(ranked, cands, cfg)
	require.Equal(t, ranked, diversified)
}

func TestDiversifySmallInputPassthrough(t *testing.T) {
	cfg := testConfig()
	require.Empty(t, Diversify([]Result{}, nil, cfg))

	single := []Result{{PostID: 1, FinalScore: 0.5}}
	require.Equal(t, single, Diversify(single, nil, cfg))
}
