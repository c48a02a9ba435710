package dto

// WeightsDTO 自定义排序权重
type WeightsDTO struct {
	Recency         float64 `json:"recency" validate:"min=0,max=1"`
	Engagement      float64 `json:"engagement" validate:"min=0,max=1"`
	Relevance       float64 `json:"relevance" validate:"min=0,max=1"`
	AuthorInfluence float64 `json:"author_influence" validate:"min=0,max=1"`
}

// WeightsViewDTO 当前生效权重视图
type WeightsViewDTO struct {
	Weights   WeightsDTO `json:"weights"`
	IsDefault bool       `json:"is_default"`
	ExpiresAt string     `json:"expires_at,omitempty"`
}
