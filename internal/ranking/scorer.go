package ranking

import (
	"math"
	"sort"
	"time"
)

// EngagementRate 加权互动数除以浏览数，浏览为 0 时按 1 计
func EngagementRate(c Counters) float64 {
	views := c.Views
	if views < 1 {
		views = 1
	}
	weighted := float64(c.Likes) + 2*float64(c.Comments) + 3*float64(c.Shares)
	return weighted / float64(views)
}

// FreshnessScore 指数时间衰减，0 龄帖子得 1.0
func FreshnessScore(createdAt, now time.Time, halfLifeHours float64) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0 {
		ageHours = 0
	}
	return math.Exp(-ageHours / halfLifeHours)
}

// AuthorInfluenceScore 由认证与粉丝量级确定性推导
func AuthorInfluenceScore(a AuthorInfluence) float64 {
	score := 0.3
	if a.IsVerified {
		score += 0.3
	}
	score += 0.4 * a.FollowerTier.Factor()
	return clamp(score, 0, 1)
}

// engagementVelocity 单位时间加权互动量，新帖年龄下限 0.5 小时防止除数爆炸
func engagementVelocity(c Counters, createdAt, now time.Time) float64 {
	ageHours := now.Sub(createdAt).Hours()
	if ageHours < 0.5 {
		ageHours = 0.5
	}
	weighted := float64(c.Likes) + 2*float64(c.Comments) + 3*float64(c.Shares)
	return weighted / ageHours
}

// RankCandidates 对候选集打分并按最终得分降序排列，同分保持原始顺序。
// 纯函数：时间由调用方显式传入，不读时钟、不做任何 I/O。
func RankCandidates(now time.Time, candidates []PostCandidate, weights Weights, profile *Profile, cfg Config) ([]Result, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []Result{}, nil
	}

	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = scoreCandidate(now, c, weights, profile, cfg)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	return results, nil
}

func scoreCandidate(now time.Time, c PostCandidate, w Weights, profile *Profile, cfg Config) Result {
	freshness := FreshnessScore(c.CreatedAt, now, cfg.FreshnessHalfLifeHours)

	rate := EngagementRate(c.Counters)
	engagement := math.Min(1, rate/cfg.EngagementSaturation)

	relevance := cfg.CategoryBlend*profile.CategoryWeight(c.Category, now, cfg) +
		cfg.AuthorBlend*profile.AuthorWeight(c.AuthorID, now, cfg)

	influence := AuthorInfluenceScore(c.Author)

	breakdown := Breakdown{
		Recency:         w.Recency * freshness,
		Engagement:      w.Engagement * engagement,
		Relevance:       w.Relevance * relevance,
		AuthorInfluence: w.AuthorInfluence * influence,
	}

	final := breakdown.Recency + breakdown.Engagement + breakdown.Relevance + breakdown.AuthorInfluence
	// 审核惩罚为乘法降权而非硬排除，下架决策属于审核系统
	final *= 1 - c.ModerationScore/100*cfg.ModerationPenaltyFactor

	velocity := engagementVelocity(c.Counters, c.CreatedAt, now)

	return Result{
		PostID:               c.ID,
		FinalScore:           final,
		EngagementRate:       rate,
		ViralityScore:        math.Min(1, velocity/cfg.ViralityReferenceDay),
		QualityScore:         clamp(c.QualityScore/100, 0, 1),
		FreshnessScore:       freshness,
		RelevanceScore:       relevance,
		AuthorInfluenceScore: influence,
		Breakdown:            breakdown,
	}
}
