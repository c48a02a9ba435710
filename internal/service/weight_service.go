package service

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/model"
	"Halcyon/internal/pkg/consts"
	"Halcyon/internal/pkg/redis"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	"errors"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
)

type WeightService interface {
	// ResolveWeights 当前生效的排序权重，覆盖缺失或过期时静默回退默认值
	ResolveWeights(ctx context.Context, userID uint64) (ranking.Weights, error)
	GetWeights(ctx context.Context, userID uint64) (*dto.WeightsViewDTO, error)
	SetWeights(ctx context.Context, userID uint64, req *dto.WeightsDTO) (*dto.WeightsViewDTO, error)
}

type weightServiceImpl struct {
	weightRepo      repository.WeightRepo
	overrideTTLDays int
}

func NewWeightService(weightRepo repository.WeightRepo, overrideTTLDays int) WeightService {
	if overrideTTLDays <= 0 {
		overrideTTLDays = 30
	}
	return &weightServiceImpl{
		weightRepo:      weightRepo,
		overrideTTLDays: overrideTTLDays,
	}
}

// translateWeightErr 将引擎校验错误映射为业务错误
func translateWeightErr(err error) error {
	switch {
	case errors.Is(err, ranking.ErrWeightOutOfRange):
		return ErrWeightOutOfRange
	case errors.Is(err, ranking.ErrWeightSumInvalid):
		return ErrWeightSumInvalid
	}
	return err
}

func (s *weightServiceImpl) ResolveWeights(ctx context.Context, userID uint64) (ranking.Weights, error) {
	override, err := s.loadOverride(ctx, userID)
	if err != nil {
		return ranking.Weights{}, err
	}
	if override == nil || override.Expired(time.Now()) {
		return ranking.DefaultWeights(), nil
	}
	return override.Weights(), nil
}

func (s *weightServiceImpl) GetWeights(ctx context.Context, userID uint64) (*dto.WeightsViewDTO, error) {
	override, err := s.loadOverride(ctx, userID)
	if err != nil {
		return nil, err
	}

	if override == nil || override.Expired(time.Now()) {
		w := ranking.DefaultWeights()
		return &dto.WeightsViewDTO{
			Weights:   toWeightsDTO(w),
			IsDefault: true,
		}, nil
	}

	return &dto.WeightsViewDTO{
		Weights:   toWeightsDTO(override.Weights()),
		IsDefault: false,
		ExpiresAt: override.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *weightServiceImpl) SetWeights(ctx context.Context, userID uint64, req *dto.WeightsDTO) (*dto.WeightsViewDTO, error) {
	weights := ranking.Weights{
		Recency:         req.Recency,
		Engagement:      req.Engagement,
		Relevance:       req.Relevance,
		AuthorInfluence: req.AuthorInfluence,
	}
	if err := weights.Validate(); err != nil {
		return nil, translateWeightErr(err)
	}

	now := time.Now()
	override := &model.WeightOverride{
		UserID:          userID,
		Recency:         weights.Recency,
		Engagement:      weights.Engagement,
		Relevance:       weights.Relevance,
		AuthorInfluence: weights.AuthorInfluence,
		ExpiresAt:       now.AddDate(0, 0, s.overrideTTLDays),
		UpdatedAt:       now,
	}
	if err := s.weightRepo.SaveOverride(ctx, override); err != nil {
		return nil, err
	}

	s.cacheOverride(ctx, override)

	return &dto.WeightsViewDTO{
		Weights:   toWeightsDTO(weights),
		IsDefault: false,
		ExpiresAt: override.ExpiresAt.Format(time.RFC3339),
	}, nil
}

// loadOverride 缓存优先读取，未命中回源并回填
func (s *weightServiceImpl) loadOverride(ctx context.Context, userID uint64) (*model.WeightOverride, error) {
	key := consts.WeightOverrideKey + strconv.FormatUint(userID, 10)

	if cached, err := redis.GetValue(ctx, key); err == nil && cached != "" {
		var override model.WeightOverride
		if err = json.Unmarshal([]byte(cached), &override); err == nil {
			return &override, nil
		}
		log.WarnContext(ctx, "权重缓存解析失败，回源", "userID", userID, "err", err)
	}

	override, err := s.weightRepo.GetOverride(ctx, userID)
	if err != nil {
		return nil, err
	}
	if override != nil {
		s.cacheOverride(ctx, override)
	}
	return override, nil
}

func (s *weightServiceImpl) cacheOverride(ctx context.Context, override *model.WeightOverride) {
	ttl := time.Until(override.ExpiresAt)
	if ttl <= 0 {
		return
	}
	if ttl > 24*time.Hour {
		ttl = 24 * time.Hour
	}
	b, err := json.Marshal(override)
	if err != nil {
		return
	}
	key := consts.WeightOverrideKey + strconv.FormatUint(override.UserID, 10)
	if err = redis.SetWithExpiration(ctx, key, string(b), ttl); err != nil {
		log.WarnContext(ctx, "权重缓存写入失败", "userID", override.UserID, "err", err)
	}
}

func toWeightsDTO(w ranking.Weights) dto.WeightsDTO {
	return dto.WeightsDTO{
		Recency:         w.Recency,
		Engagement:      w.Engagement,
		Relevance:       w.Relevance,
		AuthorInfluence: w.AuthorInfluence,
	}
}
