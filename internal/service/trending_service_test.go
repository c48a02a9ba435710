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

func trendingPost(id, authorID uint64, likes int64, age time.Duration) *model.Post {
	return &model.Post{
		ID:         id,
		UserID:     authorID,
		Title:      "post",
		Category:   "tech",
		Status:     1,
		LikesCount: likes,
		ViewsCount: 100,
		CreatedAt:  time.Now().Add(-age),
		User:       model.User{ID: authorID, Nickname: "author"},
	}
}

func TestGetTrendingRejectsUnknownTimeframe(t *testing.T) {
	svc := NewTrendingService(newFakePostRepo(), ranking.DefaultConfig(), 10*time.Minute, 500)

	_, err := svc.GetTrending(context.Background(), &dto.TrendingQueryDTO{Timeframe: "month"})
	require.ErrorIs(t, err, ErrTimeframeInvalid)
}

func TestGetTrendingEmptyPoolReturnsEmptyList(t *testing.T) {
	svc := NewTrendingService(newFakePostRepo(), ranking.DefaultConfig(), 10*time.Minute, 500)

	items, err := svc.GetTrending(context.Background(), &dto.TrendingQueryDTO{Timeframe: "day"})
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestGetTrendingOrdersByVelocity(t *testing.T) {
	svc := NewTrendingService(newFakePostRepo(
		trendingPost(1, 11, 10, 10*time.Hour),
		trendingPost(2, 12, 200, 10*time.Hour),
	), ranking.DefaultConfig(), 10*time.Minute, 500)

	items, err := svc.GetTrending(context.Background(), &dto.TrendingQueryDTO{Timeframe: "day"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, uint64(2), items[0].PostID)
	require.Greater(t, items[0].TrendingScore, items[1].TrendingScore)
	require.Equal(t, "day", items[0].Timeframe)
	require.Equal(t, "post", items[0].Title)
}

func TestGetTrendingHonorsLimit(t *testing.T) {
	svc := NewTrendingService(newFakePostRepo(
		trendingPost(1, 11, 10, 10*time.Hour),
		trendingPost(2, 12, 20, 10*time.Hour),
		trendingPost(3, 13, 30, 10*time.Hour),
	), ranking.DefaultConfig(), 10*time.Minute, 500)

	items, err := svc.GetTrending(context.Background(), &dto.TrendingQueryDTO{Timeframe: "day", Limit: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, uint64(3), items[0].PostID)
}

func TestGetTrendingServesLimitAboveDefault(t *testing.T) {
	posts := make([]*model.Post, 0, 30)
	for i := uint64(1); i <= 30; i++ {
		posts = append(posts, trendingPost(i, 100+i, int64(i), 10*time.Hour))
	}
	svc := NewTrendingService(newFakePostRepo(posts...), ranking.DefaultConfig(), 10*time.Minute, 500)

	items, err := svc.GetTrending(context.Background(), &dto.TrendingQueryDTO{Timeframe: "day", Limit: 25})
	require.NoError(t, err)
	require.Len(t, items, 25)
}

func TestWarmComputesAllTimeframes(t *testing.T) {
	svc := NewTrendingService(newFakePostRepo(
		trendingPost(1, 11, 10, 30*time.Minute),
	), ranking.DefaultConfig(), 10*time.Minute, 500)

	require.NoError(t, svc.Warm(context.Background()))
}
