package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/model"
	"Halcyon/internal/pkg/consts"
	"Halcyon/internal/pkg/redis"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
)

// trendingMaxLimit 请求侧 limit 的校验上限，计算与缓存都按这个长度保留完整榜单
const trendingMaxLimit = 100

type TrendingService interface {
	GetTrending(ctx context.Context, query *dto.TrendingQueryDTO) ([]*dto.TrendingItemDTO, error)
	// Warm 预计算三个时间窗口的无过滤榜单并写入缓存，由定时任务调用
	Warm(ctx context.Context) error
}

type trendingServiceImpl struct {
	postRepo      repository.PostRepo
	rankingCfg    ranking.Config
	cacheTTL      time.Duration
	candidatePool int
}

func NewTrendingService(postRepo repository.PostRepo, rankingCfg ranking.Config, cacheTTL time.Duration, candidatePool int) TrendingService {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	if candidatePool <= 0 {
		candidatePool = 500
	}
	return &trendingServiceImpl{
		postRepo:      postRepo,
		rankingCfg:    rankingCfg.WithDefaults(),
		cacheTTL:      cacheTTL,
		candidatePool: candidatePool,
	}
}

func (s *trendingServiceImpl) GetTrending(ctx context.Context, query *dto.TrendingQueryDTO) ([]*dto.TrendingItemDTO, error) {
	timeframe := ranking.Timeframe(query.Timeframe)
	if query.Timeframe == "" {
		timeframe = ranking.TimeframeDay
	}
	if !timeframe.Valid() {
		return nil, ErrTimeframeInvalid
	}

	limit := query.Limit
	if limit <= 0 {
		limit = s.rankingCfg.TrendingDefaultLimit
	}

	key := trendingCacheKey(timeframe, query.Category, query.Location)
	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var items []*dto.TrendingItemDTO
		if err = json.Unmarshal([]byte(cached), &items); err == nil {
			if len(items) > limit {
				items = items[:limit]
			}
			return items, nil
		}
		log.WarnContext(ctx, "趋势缓存解析失败，重新计算", "key", key, "err", err)
	}

	items, err := s.compute(ctx, timeframe, query.Category, query.Location)
	if err != nil {
		return nil, err
	}

	s.cache(ctx, key, items)

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *trendingServiceImpl) Warm(ctx context.Context) error {
	for _, timeframe := range []ranking.Timeframe{ranking.TimeframeHour, ranking.TimeframeDay, ranking.TimeframeWeek} {
		items, err := s.compute(ctx, timeframe, "", "")
		if err != nil {
			return fmt.Errorf("趋势预热失败 timeframe=%s: %w", timeframe, err)
		}
		s.cache(ctx, trendingCacheKey(timeframe, "", ""), items)
		log.InfoContext(ctx, "趋势榜单预热完成", "timeframe", timeframe, "entries", len(items))
	}
	return nil
}

// compute 全量计算一个窗口的榜单，长度为请求侧上限的完整版本，按请求 limit 截断交给读取方
func (s *trendingServiceImpl) compute(ctx context.Context, timeframe ranking.Timeframe, category, location string) ([]*dto.TrendingItemDTO, error) {
	now := time.Now()
	posts, err := s.postRepo.FetchCandidates(ctx, repository.CandidateFilter{
		Since:       now.Add(-timeframe.Duration()),
		Category:    category,
		LocationTag: location,
		Limit:       s.candidatePool,
	})
	if err != nil {
		return nil, err
	}

	candidates := toCandidates(posts, nil)
	entries := ranking.ComputeTrending(now, candidates, timeframe, trendingMaxLimit, s.rankingCfg)

	byID := make(map[uint64]*model.Post, len(posts))
	for _, p := range posts {
		byID[p.ID] = p
	}

	items := make([]*dto.TrendingItemDTO, 0, len(entries))
	for _, e := range entries {
		item := &dto.TrendingItemDTO{
			PostID:        e.PostID,
			TrendingScore: e.TrendingScore,
			Timeframe:     string(e.Timeframe),
			Metrics: dto.TrendingMetricsDTO{
				EngagementVelocity: e.Metrics.EngagementVelocity,
				ShareRate:          e.Metrics.ShareRate,
				CommentRate:        e.Metrics.CommentRate,
				UniqueViewers:      e.Metrics.UniqueViewers,
			},
		}
		if p, ok := byID[e.PostID]; ok {
			item.Title = p.Title
			item.Category = p.Category
			item.AuthorID = p.UserID
			item.AuthorNickname = p.User.Nickname
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *trendingServiceImpl) cache(ctx context.Context, key string, items []*dto.TrendingItemDTO) {
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err = redis.SetWithExpiration(ctx, key, string(b), s.cacheTTL); err != nil {
		log.WarnContext(ctx, "趋势缓存写入失败", "key", key, "err", err)
	}
}

func trendingCacheKey(timeframe ranking.Timeframe, category, location string) string {
	return consts.TrendingKey + string(timeframe) + ":" + category + ":" + location
}
