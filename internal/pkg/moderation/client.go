package moderation

import (
	"Halcyon/internal/api/config"
	"context"
	log "log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client 审核中心客户端，批量查询帖子的违规分
type Client interface {
	// GetScores 返回 postID -> 违规分(0-100)，查不到的帖子按 0 处理
	GetScores(ctx context.Context, postIDs []uint64) (map[uint64]float64, error)
}

type clientImpl struct {
	httpClient *resty.Client
	endpoint   string
}

type scoresRequest struct {
	PostIDs []uint64 `json:"post_ids"`
}

type scoresResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data []struct {
		PostID uint64  `json:"post_id"`
		Score  float64 `json:"score"`
	} `json:"data"`
}

func NewClient(cfg config.ModerationConfig) Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.TimeoutMs) * time.Millisecond).
		SetHeader("X-Api-Key", cfg.ApiKey).
		SetRetryCount(1)

	return &clientImpl{
		httpClient: client,
		endpoint:   "/v1/scores/batch",
	}
}

func (s *clientImpl) GetScores(ctx context.Context, postIDs []uint64) (map[uint64]float64, error) {
	scores := make(map[uint64]float64, len(postIDs))
	if len(postIDs) == 0 {
		return scores, nil
	}

	var result scoresResponse
	resp, err := s.httpClient.R().
		SetContext(ctx).
		SetBody(scoresRequest{PostIDs: postIDs}).
		SetResult(&result).
		Post(s.endpoint)

	// 审核中心不可用时按无违规处理，排序照常进行
	if err != nil || resp.IsError() {
		log.WarnContext(ctx, "审核中心查询失败，违规分按 0 处理", "err", err)
		return scores, nil
	}

	for _, item := range result.Data {
		scores[item.PostID] = item.Score
	}
	return scores, nil
}
