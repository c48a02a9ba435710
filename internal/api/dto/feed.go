package dto

// FeedQueryDTO 个性化信息流查询参数
type FeedQueryDTO struct {
	Limit           int      `form:"limit" validate:"omitempty,min=1,max=100"`
	Offset          int      `form:"offset" validate:"omitempty,min=0"`
	TimeWindowHours int      `form:"time_window" validate:"omitempty,min=1,max=720"`
	Category        string   `form:"category" validate:"omitempty,max=64"`
	Location        string   `form:"location" validate:"omitempty,max=128"`
	FollowedOnly    bool     `form:"followed_only"`
	DiversityBoost  *bool    `form:"diversity_boost"`
	ExcludeIDs      []uint64 `form:"exclude_ids"`

	// 内联权重覆盖：要么四项齐全，要么全部缺省
	Recency         *float64 `form:"w_recency"`
	Engagement      *float64 `form:"w_engagement"`
	Relevance       *float64 `form:"w_relevance"`
	AuthorInfluence *float64 `form:"w_author_influence"`
}

// RankingFactorsDTO 单帖的排序因子拆解
type RankingFactorsDTO struct {
	Recency         float64 `json:"recency"`
	Engagement      float64 `json:"engagement"`
	Relevance       float64 `json:"relevance"`
	AuthorInfluence float64 `json:"author_influence"`
}

// FeedItemDTO 信息流条目
type FeedItemDTO struct {
	ID             uint64            `json:"id"`
	Title          string            `json:"title"`
	Category       string            `json:"category"`
	LocationTag    string            `json:"location_tag"`
	Hashtags       []string          `json:"hashtags"`
	AuthorID       uint64            `json:"author_id"`
	AuthorNickname string            `json:"author_nickname"`
	CreatedAt      string            `json:"created_at"`
	LikesCount     int64             `json:"likes_count"`
	CommentsCount  int64             `json:"comments_count"`
	SharesCount    int64             `json:"shares_count"`
	ViewsCount     int64             `json:"views_count"`
	FinalScore     float64           `json:"final_score"`
	RankingFactors RankingFactorsDTO `json:"ranking_factors"`
}

// FeedPageDTO 信息流分页结果
type FeedPageDTO struct {
	Items   []*FeedItemDTO `json:"items"`
	Total   int            `json:"total"`
	Offset  int            `json:"offset"`
	HasMore bool           `json:"has_more"`
}
