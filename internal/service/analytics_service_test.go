package service

import (
	"Halcyon/internal/model"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetAnalyticsRejectsUnknownTimeframe(t *testing.T) {
	svc := NewAnalyticsService(newFakePostRepo(), &fakeInteractionRepo{}, newFakePreferenceRepo(), ranking.DefaultConfig())

	_, err := svc.GetAnalytics(context.Background(), 1, "fortnight")
	require.ErrorIs(t, err, ErrTimeframeInvalid)
}

func TestGetAnalyticsColdStartIsAllZero(t *testing.T) {
	svc := NewAnalyticsService(newFakePostRepo(), &fakeInteractionRepo{}, newFakePreferenceRepo(), ranking.DefaultConfig())

	result, err := svc.GetAnalytics(context.Background(), 1, "")
	require.NoError(t, err)
	require.Equal(t, "week", result.Timeframe)
	require.Zero(t, result.TotalPosts)
	require.Zero(t, result.AvgEngagementRate)
	require.Zero(t, result.PersonalizedScore)
}

func TestGetAnalyticsAggregates(t *testing.T) {
	postRepo := newFakePostRepo()
	postRepo.userPosts = []*model.Post{
		{ID: 1, UserID: 1, LikesCount: 10, ViewsCount: 100},
		{ID: 2, UserID: 1, LikesCount: 30, ViewsCount: 100},
	}
	interactionRepo := &fakeInteractionRepo{
		byCat: []repository.CategoryCount{
			{Category: "tech", Count: 40},
			{Category: "food", Count: 5},
		},
		byDay: []repository.DayEngagement{
			{Day: "2026-08-27", Views: 100, Likes: 10},
			{Day: "2026-08-28", Views: 50, Likes: 5, Comments: 5},
		},
	}
	preferenceRepo := newFakePreferenceRepo()
	pref := &model.UserPreference{UserID: 1}
	profile := ranking.NewProfile(1)
	profile.CategoryInterest["tech"] = ranking.Entry{Weight: 0.8, UpdatedAt: time.Now()}
	pref.FromProfile(profile)
	preferenceRepo.prefs[1] = pref

	svc := NewAnalyticsService(postRepo, interactionRepo, preferenceRepo, ranking.DefaultConfig())

	result, err := svc.GetAnalytics(context.Background(), 1, "week")
	require.NoError(t, err)
	require.Equal(t, 2, result.TotalPosts)
	// (10/100 + 30/100) / 2
	require.InDelta(t, 0.2, result.AvgEngagementRate, 1e-9)
	require.Len(t, result.TopCategories, 2)
	require.Equal(t, "tech", result.TopCategories[0].Category)
	require.Len(t, result.EngagementTrends, 2)
	require.Equal(t, "2026-08-27", result.EngagementTrends[0].Date)
	// 10/100
	require.InDelta(t, 0.1, result.EngagementTrends[0].EngagementRate, 1e-9)
	// (5 + 2*5)/50
	require.InDelta(t, 0.3, result.EngagementTrends[1].EngagementRate, 1e-9)
	// 单一品类画像的集中度为 1
	require.InDelta(t, 1.0, result.PersonalizedScore, 1e-9)
}
