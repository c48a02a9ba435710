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

func TestResolveWeightsDefaultsWhenNoOverride(t *testing.T) {
	svc := NewWeightService(newFakeWeightRepo(), 30)

	w, err := svc.ResolveWeights(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, ranking.DefaultWeights(), w)
}

func TestResolveWeightsExpiredOverrideFallsBack(t *testing.T) {
	repo := newFakeWeightRepo()
	repo.overrides[1] = &model.WeightOverride{
		UserID:          1,
		Recency:         0.7,
		Engagement:      0.1,
		Relevance:       0.1,
		AuthorInfluence: 0.1,
		ExpiresAt:       time.Now().Add(-time.Hour),
	}
	svc := NewWeightService(repo, 30)

	w, err := svc.ResolveWeights(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, ranking.DefaultWeights(), w)

	view, err := svc.GetWeights(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, view.IsDefault)
}

func TestResolveWeightsUsesStoredOverride(t *testing.T) {
	repo := newFakeWeightRepo()
	repo.overrides[1] = &model.WeightOverride{
		UserID:          1,
		Recency:         0.7,
		Engagement:      0.1,
		Relevance:       0.1,
		AuthorInfluence: 0.1,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	svc := NewWeightService(repo, 30)

	w, err := svc.ResolveWeights(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, 0.7, w.Recency)
}

func TestSetWeightsRejectsInvalidSum(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo, 30)

	_, err := svc.SetWeights(context.Background(), 1, &dto.WeightsDTO{
		Recency: 0.5, Engagement: 0.5, Relevance: 0.5, AuthorInfluence: 0.5,
	})
	require.ErrorIs(t, err, ErrWeightSumInvalid)
	require.Zero(t, repo.saved)
}

func TestSetWeightsRejectsOutOfRangeComponent(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo, 30)

	_, err := svc.SetWeights(context.Background(), 1, &dto.WeightsDTO{
		Recency: 1.2, Engagement: -0.2, Relevance: 0, AuthorInfluence: 0,
	})
	require.ErrorIs(t, err, ErrWeightOutOfRange)
	require.Zero(t, repo.saved)
}

func TestSetWeightsPersistsWithExpiry(t *testing.T) {
	repo := newFakeWeightRepo()
	svc := NewWeightService(repo, 30)

	view, err := svc.SetWeights(context.Background(), 1, &dto.WeightsDTO{
		Recency: 0.25, Engagement: 0.25, Relevance: 0.25, AuthorInfluence: 0.25,
	})
	require.NoError(t, err)
	require.False(t, view.IsDefault)
	require.Equal(t, 1, repo.saved)

	stored := repo.overrides[1]
	require.NotNil(t, stored)
	require.WithinDuration(t, time.Now().AddDate(0, 0, 30), stored.ExpiresAt, time.Minute)
}
