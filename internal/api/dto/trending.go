package dto

// TrendingQueryDTO 趋势榜单查询参数
type TrendingQueryDTO struct {
	Timeframe string `form:"timeframe" validate:"omitempty,oneof=hour day week"`
	Category  string `form:"category" validate:"omitempty,max=64"`
	Location  string `form:"location" validate:"omitempty,max=128"`
	Limit     int    `form:"limit" validate:"omitempty,min=1,max=100"`
}

// TrendingMetricsDTO 趋势条目辅助指标
type TrendingMetricsDTO struct {
	EngagementVelocity float64 `json:"engagement_velocity"`
	ShareRate          float64 `json:"share_rate"`
	CommentRate        float64 `json:"comment_rate"`
	UniqueViewers      int64   `json:"unique_viewers"`
}

// TrendingItemDTO 趋势榜单条目
type TrendingItemDTO struct {
	PostID         uint64             `json:"post_id"`
	Title          string             `json:"title"`
	Category       string             `json:"category"`
	AuthorID       uint64             `json:"author_id"`
	AuthorNickname string             `json:"author_nickname"`
	TrendingScore  float64            `json:"trending_score"`
	Timeframe      string             `json:"timeframe"`
	Metrics        TrendingMetricsDTO `json:"metrics"`
}
