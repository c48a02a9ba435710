package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/model"
	"Halcyon/internal/pkg/moderation"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

const (
	defaultFeedLimit       = 20
	defaultTimeWindowHours = 72
)

type FeedService interface {
	GetFeed(ctx context.Context, userID uint64, query *dto.FeedQueryDTO) (*dto.FeedPageDTO, error)
}

type feedServiceImpl struct {
	postRepo       repository.PostRepo
	preferenceRepo repository.PreferenceRepo
	userFollowRepo repository.UserFollowRepo
	weightService  WeightService
	moderation     moderation.Client
	rankingCfg     ranking.Config
	candidatePool  int
}

func NewFeedService(
	postRepo repository.PostRepo,
	preferenceRepo repository.PreferenceRepo,
	userFollowRepo repository.UserFollowRepo,
	weightService WeightService,
	moderationClient moderation.Client,
	rankingCfg ranking.Config,
	candidatePool int,
) FeedService {
	if candidatePool <= 0 {
		candidatePool = 500
	}
	return &feedServiceImpl{
		postRepo:       postRepo,
		preferenceRepo: preferenceRepo,
		userFollowRepo: userFollowRepo,
		weightService:  weightService,
		moderation:     moderationClient,
		rankingCfg:     rankingCfg.WithDefaults(),
		candidatePool:  candidatePool,
	}
}

func (s *feedServiceImpl) GetFeed(ctx context.Context, userID uint64, query *dto.FeedQueryDTO) (*dto.FeedPageDTO, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	offset := query.Offset
	if offset < 0 {
		return nil, ErrParamInvalid
	}
	windowHours := query.TimeWindowHours
	if windowHours <= 0 {
		windowHours = defaultTimeWindowHours
	}

	weights, err := s.resolveWeights(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	filter := repository.CandidateFilter{
		Since:       now.Add(-time.Duration(windowHours) * time.Hour),
		Category:    query.Category,
		LocationTag: query.Location,
		ExcludeIDs:  query.ExcludeIDs,
		Limit:       s.candidatePool,
	}

	if query.FollowedOnly {
		followingIDs, err := s.userFollowRepo.GetFollowingIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
		// 没有任何关注时关注流必然为空，不必查询候选池
		if len(followingIDs) == 0 {
			return emptyFeedPage(offset), nil
		}
		filter.AuthorIDs = followingIDs
	}

	posts, err := s.postRepo.FetchCandidates(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return emptyFeedPage(offset), nil
	}

	// 画像加载失败必须硬失败：退化成非个性化结果对用户是静默错误
	pref, err := s.preferenceRepo.GetPreference(ctx, userID)
	if err != nil {
		return nil, ErrProfileLoad
	}
	var profile *ranking.Profile
	if pref == nil {
		profile = ranking.NewProfile(userID)
	} else {
		profile = pref.ToProfile()
	}

	postIDs := make([]uint64, len(posts))
	for i, p := range posts {
		postIDs[i] = p.ID
	}
	moderationScores, err := s.moderation.GetScores(ctx, postIDs)
	if err != nil {
		// 客户端内部已经降级，这里兜底保证审核不可用不阻断信息流
		log.WarnContext(ctx, "审核分获取失败，按 0 处理", "err", err)
		moderationScores = map[uint64]float64{}
	}

	candidates := toCandidates(posts, moderationScores)

	ranked, err := ranking.RankCandidates(now, candidates, weights, profile, s.rankingCfg)
	if err != nil {
		return nil, translateWeightErr(err)
	}

	if query.DiversityBoost == nil || *query.DiversityBoost {
		ranked = ranking.Diversify(ranked, candidates, s.rankingCfg)
	}

	total := len(ranked)
	if offset >= total {
		page := emptyFeedPage(offset)
		page.Total = total
		return page, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	pageResults := ranked[offset:end]

	byID := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	items := make([]*dto.FeedItemDTO, 0, len(pageResults))
	for _, r := range pageResults {
		p, ok := byID[r.PostID]
		if !ok {
			continue
		}
		item := &dto.FeedItemDTO{}
		if err = copier.Copy(item, p); err != nil {
			return nil, err
		}
		item.AuthorID = p.UserID
		item.AuthorNickname = p.User.Nickname
		item.CreatedAt = p.CreatedAt.Format(time.RFC3339)
		item.FinalScore = r.FinalScore
		item.RankingFactors = dto.RankingFactorsDTO{
			Recency:         r.Breakdown.Recency,
			Engagement:      r.Breakdown.Engagement,
			Relevance:       r.Breakdown.Relevance,
			AuthorInfluence: r.Breakdown.AuthorInfluence,
		}
		items = append(items, item)
	}

	return &dto.FeedPageDTO{
		Items:   items,
		Total:   total,
		Offset:  offset,
		HasMore: end < total,
	}, nil
}

// resolveWeights 内联覆盖 > 已存覆盖 > 默认值
func (s *feedServiceImpl) resolveWeights(ctx context.Context, userID uint64, query *dto.FeedQueryDTO) (ranking.Weights, error) {
	inline := []*float64{query.Recency, query.Engagement, query.Relevance, query.AuthorInfluence}
	provided := 0
	for _, v := range inline {
		if v != nil {
			provided++
		}
	}

	switch provided {
	case 0:
		return s.weightService.ResolveWeights(ctx, userID)
	case len(inline):
		weights := ranking.Weights{
			Recency:         *query.Recency,
			Engagement:      *query.Engagement,
			Relevance:       *query.Relevance,
			AuthorInfluence: *query.AuthorInfluence,
		}
		if err := weights.Validate(); err != nil {
			return ranking.Weights{}, translateWeightErr(err)
		}
		return weights, nil
	default:
		return ranking.Weights{}, ErrWeightIncomplete
	}
}

func emptyFeedPage(offset int) *dto.FeedPageDTO {
	return &dto.FeedPageDTO{
		Items:  []*dto.FeedItemDTO{},
		Offset: offset,
	}
}

// toCandidates 将持久化模型映射为引擎候选快照
func toCandidates(posts []*model.Post, moderationScores map[uint64]float64) []ranking.PostCandidate {
	candidates := make([]ranking.PostCandidate, len(posts))
	for i, p := range posts {
		candidates[i] = ranking.PostCandidate{
			ID:          p.ID,
			AuthorID:    p.UserID,
			Category:    p.Category,
			LocationTag: p.LocationTag,
			Hashtags:    p.Hashtags,
			CreatedAt:   p.CreatedAt,
			Counters: ranking.Counters{
				Likes:    p.LikesCount,
				Comments: p.CommentsCount,
				Shares:   p.SharesCount,
				Views:    p.ViewsCount,
			},
			Author: ranking.AuthorInfluence{
				IsInfluencer: p.User.IsInfluencer,
				IsVerified:   p.User.IsVerified,
				FollowerTier: ranking.FollowerTier(p.User.FollowerTier),
			},
			ModerationScore: moderationScores[p.ID],
			QualityScore:    p.QualityScore,
		}
	}
	return candidates
}
