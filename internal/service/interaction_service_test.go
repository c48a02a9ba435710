package service

import (
	"Halcyon/internal/model"
	"Halcyon/internal/ranking"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func interactionFixture() (*fakeInteractionRepo, *fakePreferenceRepo, *fakePostRepo, InteractionService) {
	interactionRepo := &fakeInteractionRepo{}
	preferenceRepo := newFakePreferenceRepo()
	postRepo := newFakePostRepo(&model.Post{
		ID:       10,
		UserID:   99,
		Category: "tech",
		Status:   1,
	})
	svc := NewInteractionService(interactionRepo, preferenceRepo, postRepo, ranking.DefaultConfig())
	return interactionRepo, preferenceRepo, postRepo, svc
}

func TestRecordRejectsUnknownTypeBeforeAnyWrite(t *testing.T) {
	interactionRepo, preferenceRepo, _, svc := interactionFixture()

	err := svc.Record(context.Background(), 1, 10, "bookmark")
	require.ErrorIs(t, err, ErrInteractionTypeInvalid)
	require.Empty(t, interactionRepo.created)
	require.Zero(t, preferenceRepo.saved)
}

func TestRecordRejectsMissingPost(t *testing.T) {
	interactionRepo, preferenceRepo, _, svc := interactionFixture()

	err := svc.Record(context.Background(), 1, 404, "like")
	require.ErrorIs(t, err, ErrPostNotFound)
	require.Empty(t, interactionRepo.created)
	require.Zero(t, preferenceRepo.saved)
}

func TestRecordRejectsZeroIDs(t *testing.T) {
	_, _, _, svc := interactionFixture()

	require.ErrorIs(t, svc.Record(context.Background(), 0, 10, "like"), ErrParamInvalid)
	require.ErrorIs(t, svc.Record(context.Background(), 1, 0, "like"), ErrParamInvalid)
}

func TestRecordPersistsAndReinforcesProfile(t *testing.T) {
	interactionRepo, preferenceRepo, _, svc := interactionFixture()

	err := svc.Record(context.Background(), 1, 10, "like")
	require.NoError(t, err)

	require.Len(t, interactionRepo.created, 1)
	row := interactionRepo.created[0]
	require.Equal(t, uint64(99), row.AuthorID)
	require.Equal(t, "tech", row.Category)
	require.Equal(t, "like", row.Type)

	pref := preferenceRepo.prefs[1]
	require.NotNil(t, pref)
	// like 的强化量为 step(0.02) * weight(3)
	require.InDelta(t, 0.06, pref.CategoryInterest["tech"].Weight, 1e-9)
	require.InDelta(t, 0.06, pref.AuthorAffinity[99].Weight, 1e-9)
}

func TestRecordRepeatedInteractionsAccumulate(t *testing.T) {
	_, preferenceRepo, _, svc := interactionFixture()

	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Record(context.Background(), 1, 10, "share"))
	}

	pref := preferenceRepo.prefs[1]
	require.NotNil(t, pref)
	require.InDelta(t, 0.42, pref.CategoryInterest["tech"].Weight, 1e-9)
}

func TestRecordSurfacesStorageFailure(t *testing.T) {
	interactionRepo, preferenceRepo, _, svc := interactionFixture()
	boom := errors.New("disk full")
	interactionRepo.createErr = boom

	err := svc.Record(context.Background(), 1, 10, "view")
	require.ErrorIs(t, err, boom)
	require.Zero(t, preferenceRepo.saved)
}

func TestRecordUpdatesLastInteractionAt(t *testing.T) {
	_, preferenceRepo, _, svc := interactionFixture()

	before := time.Now()
	require.NoError(t, svc.Record(context.Background(), 1, 10, "comment"))

	pref := preferenceRepo.prefs[1]
	require.NotNil(t, pref)
	require.False(t, pref.LastInteractionAt.Before(before))
}
