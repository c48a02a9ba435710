package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	"time"
)

const topCategoryLimit = 5

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID uint64, timeframe string) (*dto.AnalyticsDTO, error)
}

type analyticsServiceImpl struct {
	postRepo        repository.PostRepo
	interactionRepo repository.InteractionRepo
	preferenceRepo  repository.PreferenceRepo
	rankingCfg      ranking.Config
}

func NewAnalyticsService(
	postRepo repository.PostRepo,
	interactionRepo repository.InteractionRepo,
	preferenceRepo repository.PreferenceRepo,
	rankingCfg ranking.Config,
) AnalyticsService {
	return &analyticsServiceImpl{
		postRepo:        postRepo,
		interactionRepo: interactionRepo,
		preferenceRepo:  preferenceRepo,
		rankingCfg:      rankingCfg.WithDefaults(),
	}
}

func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context, userID uint64, timeframe string) (*dto.AnalyticsDTO, error) {
	tf := ranking.Timeframe(timeframe)
	if timeframe == "" {
		tf = ranking.TimeframeWeek
	}
	if !tf.Valid() {
		return nil, ErrTimeframeInvalid
	}

	now := time.Now()
	since := now.Add(-tf.Duration())

	posts, err := s.postRepo.GetUserPostsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	var avgRate float64
	if len(posts) > 0 {
		var sum float64
		for _, p := range posts {
			sum += ranking.EngagementRate(ranking.Counters{
				Likes:    p.LikesCount,
				Comments: p.CommentsCount,
				Shares:   p.SharesCount,
				Views:    p.ViewsCount,
			})
		}
		avgRate = sum / float64(len(posts))
	}

	categoryCounts, err := s.interactionRepo.CountReceivedByCategory(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	if len(categoryCounts) > topCategoryLimit {
		categoryCounts = categoryCounts[:topCategoryLimit]
	}
	topCategories := make([]*dto.CategoryCountDTO, len(categoryCounts))
	for i, c := range categoryCounts {
		topCategories[i] = &dto.CategoryCountDTO{Category: c.Category, Count: c.Count}
	}

	dayBuckets, err := s.interactionRepo.EngagementReceivedByDay(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	trends := make([]*dto.TrendPointDTO, len(dayBuckets))
	for i, d := range dayBuckets {
		trends[i] = &dto.TrendPointDTO{
			Date: d.Day,
			EngagementRate: ranking.EngagementRate(ranking.Counters{
				Likes:    d.Likes,
				Comments: d.Comments,
				Shares:   d.Shares,
				Views:    d.Views,
			}),
		}
	}

	pref, err := s.preferenceRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, ErrProfileLoad
	}
	var personalized float64
	if pref != nil {
		personalized = pref.ToProfile().PersonalizationScore(now, s.rankingCfg)
	}

	return &dto.AnalyticsDTO{
		Timeframe:         string(tf),
		TotalPosts:        len(posts),
		AvgEngagementRate: avgRate,
		TopCategories:     topCategories,
		EngagementTrends:  trends,
		PersonalizedScore: personalized,
	}, nil
}
