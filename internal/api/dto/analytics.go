package dto

// CategoryCountDTO 品类互动计数
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TrendPointDTO 按天聚合的平均互动率
type TrendPointDTO struct {
	Date           string  `json:"date"`
	EngagementRate float64 `json:"engagement_rate"`
}

// AnalyticsDTO 用户内容表现概览
type AnalyticsDTO struct {
	Timeframe         string              `json:"timeframe"`
	TotalPosts        int                 `json:"total_posts"`
	AvgEngagementRate float64             `json:"avg_engagement_rate"`
	TopCategories     []*CategoryCountDTO `json:"top_categories"`
	EngagementTrends  []*TrendPointDTO    `json:"engagement_trends"`
	PersonalizedScore float64             `json:"personalized_score"`
}
