package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/model"
	"Halcyon/internal/ranking"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func feedPost(id, authorID uint64, category string, age time.Duration) *model.Post {
	return &model.Post{
		ID:        id,
		UserID:    authorID,
		Title:     "post",
		Category:  category,
		Status:    1,
		CreatedAt: time.Now().Add(-age),
		User:      model.User{ID: authorID, Nickname: "author", FollowerTier: "none"},
	}
}

func feedFixture(posts ...*model.Post) (*fakeWeightService, *fakePreferenceRepo, *fakeUserFollowRepo, FeedService) {
	weightSvc := &fakeWeightService{weights: ranking.DefaultWeights()}
	preferenceRepo := newFakePreferenceRepo()
	followRepo := &fakeUserFollowRepo{}
	svc := NewFeedService(
		newFakePostRepo(posts...),
		preferenceRepo,
		followRepo,
		weightSvc,
		&fakeModeration{},
		ranking.DefaultConfig(),
		500,
	)
	return weightSvc, preferenceRepo, followRepo, svc
}

func ptr(v float64) *float64 { return &v }

func disabled() *bool {
	v := false
	return &v
}

func TestGetFeedInlineOverrideSkipsStoredWeights(t *testing.T) {
	weightSvc, _, _, svc := feedFixture(
		feedPost(1, 11, "tech", time.Hour),
		feedPost(2, 12, "food", 48*time.Hour),
	)

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{
		Recency:         ptr(1),
		Engagement:      ptr(0),
		Relevance:       ptr(0),
		AuthorInfluence: ptr(0),
		DiversityBoost:  disabled(),
	})
	require.NoError(t, err)
	require.Zero(t, weightSvc.resolveCalls)

	// 纯新鲜度权重下新帖必须排前
	require.Len(t, page.Items, 2)
	require.Equal(t, uint64(1), page.Items[0].ID)
}

func TestGetFeedIncompleteInlineOverrideRejected(t *testing.T) {
	_, _, _, svc := feedFixture(feedPost(1, 11, "tech", time.Hour))

	_, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{
		Recency: ptr(0.5),
	})
	require.ErrorIs(t, err, ErrWeightIncomplete)
}

func TestGetFeedUsesStoredWeightsWhenNoInline(t *testing.T) {
	weightSvc, _, _, svc := feedFixture(feedPost(1, 11, "tech", time.Hour))

	_, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{})
	require.NoError(t, err)
	require.Equal(t, 1, weightSvc.resolveCalls)
}

func TestGetFeedProfileLoadFailureIsHardError(t *testing.T) {
	_, preferenceRepo, _, svc := feedFixture(feedPost(1, 11, "tech", time.Hour))
	preferenceRepo.getErr = context.DeadlineExceeded

	_, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{})
	require.ErrorIs(t, err, ErrProfileLoad)
}

func TestGetFeedFollowedOnlyWithoutFollowsIsEmpty(t *testing.T) {
	_, _, _, svc := feedFixture(feedPost(1, 11, "tech", time.Hour))

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{FollowedOnly: true})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Zero(t, page.Total)
}

func TestGetFeedFollowedOnlyFiltersAuthors(t *testing.T) {
	_, _, followRepo, svc := feedFixture(
		feedPost(1, 11, "tech", time.Hour),
		feedPost(2, 12, "food", time.Hour),
	)
	followRepo.following = map[uint64][]uint64{1: {12}}

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{FollowedOnly: true})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, uint64(2), page.Items[0].ID)
}

func TestGetFeedPagination(t *testing.T) {
	_, _, _, svc := feedFixture(
		feedPost(1, 11, "tech", 1*time.Hour),
		feedPost(2, 12, "food", 2*time.Hour),
		feedPost(3, 13, "travel", 3*time.Hour),
	)

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{
		Limit:          2,
		DiversityBoost: disabled(),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, 3, page.Total)
	require.True(t, page.HasMore)

	page, err = svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{
		Limit:          2,
		Offset:         2,
		DiversityBoost: disabled(),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.False(t, page.HasMore)

	page, err = svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{
		Offset:         99,
		DiversityBoost: disabled(),
	})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Equal(t, 3, page.Total)
}

func TestGetFeedModerationScoreDemotes(t *testing.T) {
	flagged := feedPost(1, 11, "tech", time.Hour)
	clean := feedPost(2, 12, "food", time.Hour)

	weightSvc := &fakeWeightService{weights: ranking.DefaultWeights()}
	svc := NewFeedService(
		newFakePostRepo(flagged, clean),
		newFakePreferenceRepo(),
		&fakeUserFollowRepo{},
		weightSvc,
		&fakeModeration{scores: map[uint64]float64{1: 100}},
		ranking.DefaultConfig(),
		500,
	)

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{DiversityBoost: disabled()})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	require.Equal(t, uint64(2), page.Items[0].ID)
	require.Less(t, page.Items[1].FinalScore, page.Items[0].FinalScore)
}

func TestGetFeedBreakdownSumsToFinalScore(t *testing.T) {
	_, _, _, svc := feedFixture(feedPost(1, 11, "tech", time.Hour))

	page, err := svc.GetFeed(context.Background(), 1, &dto.FeedQueryDTO{DiversityBoost: disabled()})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	f := page.Items[0].RankingFactors
	sum := f.Recency + f.Engagement + f.Relevance + f.AuthorInfluence
	// 无审核分时惩罚系数为 1，各因子贡献之和即最终得分
	require.InDelta(t, sum, page.Items[0].FinalScore, 1e-9)
}
