package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/model"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	"time"
)

type fakePostRepo struct {
	posts     map[uint64]*model.Post
	fetchErr  error
	userPosts []*model.Post
}

func newFakePostRepo(posts ...*model.Post) *fakePostRepo {
	m := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		m[p.ID] = p
	}
	return &fakePostRepo{posts: m}
}

func (r *fakePostRepo) FetchCandidates(_ context.Context, filter repository.CandidateFilter) ([]*model.Post, error) {
	if r.fetchErr != nil {
		return nil, r.fetchErr
	}
	var out []*model.Post
	for _, p := range r.posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if len(filter.AuthorIDs) > 0 {
			found := false
			for _, id := range filter.AuthorIDs {
				if p.UserID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePostRepo) GetPost(_ context.Context, postID uint64) (*model.Post, error) {
	return r.posts[postID], nil
}

func (r *fakePostRepo) GetPostByIds(_ context.Context, ids []uint64) ([]*model.Post, error) {
	var out []*model.Post
	for _, id := range ids {
		if p, ok := r.posts[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePostRepo) GetUserPostsSince(_ context.Context, userID uint64, since time.Time) ([]*model.Post, error) {
	if r.userPosts != nil {
		return r.userPosts, nil
	}
	var out []*model.Post
	for _, p := range r.posts {
		if p.UserID == userID && !p.CreatedAt.Before(since) {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePreferenceRepo struct {
	prefs   map[uint64]*model.UserPreference
	getErr  error
	saveErr error
	saved   int
}

func newFakePreferenceRepo() *fakePreferenceRepo {
	return &fakePreferenceRepo{prefs: make(map[uint64]*model.UserPreference)}
}

func (r *fakePreferenceRepo) GetPreference(_ context.Context, userID uint64) (*model.UserPreference, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	return r.prefs[userID], nil
}

func (r *fakePreferenceRepo) SavePreference(_ context.Context, pref *model.UserPreference) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.prefs[pref.UserID] = pref
	r.saved++
	return nil
}

type fakeWeightRepo struct {
	overrides map[uint64]*model.WeightOverride
	saved     int
}

func newFakeWeightRepo() *fakeWeightRepo {
	return &fakeWeightRepo{overrides: make(map[uint64]*model.WeightOverride)}
}

func (r *fakeWeightRepo) GetOverride(_ context.Context, userID uint64) (*model.WeightOverride, error) {
	return r.overrides[userID], nil
}

func (r *fakeWeightRepo) SaveOverride(_ context.Context, override *model.WeightOverride) error {
	r.overrides[override.UserID] = override
	r.saved++
	return nil
}

type fakeInteractionRepo struct {
	created   []*model.Interaction
	createErr error
	byCat     []repository.CategoryCount
	byDay     []repository.DayEngagement
}

func (r *fakeInteractionRepo) CreateInteraction(_ context.Context, interaction *model.Interaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, interaction)
	return nil
}

func (r *fakeInteractionRepo) CountReceivedByCategory(_ context.Context, _ uint64, _ time.Time) ([]repository.CategoryCount, error) {
	return r.byCat, nil
}

func (r *fakeInteractionRepo) EngagementReceivedByDay(_ context.Context, _ uint64, _ time.Time) ([]repository.DayEngagement, error) {
	return r.byDay, nil
}

type fakeUserFollowRepo struct {
	following map[uint64][]uint64
}

func (r *fakeUserFollowRepo) GetFollowingIDs(_ context.Context, userID uint64) ([]uint64, error) {
	if r.following == nil {
		return nil, nil
	}
	return r.following[userID], nil
}

type fakeModeration struct {
	scores map[uint64]float64
}

func (m *fakeModeration) GetScores(_ context.Context, postIDs []uint64) (map[uint64]float64, error) {
	out := make(map[uint64]float64, len(postIDs))
	for _, id := range postIDs {
		out[id] = m.scores[id]
	}
	return out, nil
}

type fakeWeightService struct {
	weights      ranking.Weights
	resolveCalls int
}

func (s *fakeWeightService) ResolveWeights(_ context.Context, _ uint64) (ranking.Weights, error) {
	s.resolveCalls++
	return s.weights, nil
}

func (s *fakeWeightService) GetWeights(_ context.Context, _ uint64) (*dto.WeightsViewDTO, error) {
	panic("not used in tests")
}

func (s *fakeWeightService) SetWeights(_ context.Context, _ uint64, _ *dto.WeightsDTO) (*dto.WeightsViewDTO, error) {
	panic("not used in tests")
}
