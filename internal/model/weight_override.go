package model

import (
	"Halcyon/internal/ranking"
	"time"
)

// WeightOverride 用户自定义排序权重，到期后静默回退默认值
type WeightOverride struct {
	UserID          uint64    `gorm:"primaryKey" json:"user_id"`
	Recency         float64   `gorm:"not null" json:"recency"`
	Engagement      float64   `gorm:"not null" json:"engagement"`
	Relevance       float64   `gorm:"not null" json:"relevance"`
	AuthorInfluence float64   `gorm:"not null" json:"author_influence"`
	ExpiresAt       time.Time `gorm:"not null;index:idx_expires_at" json:"expires_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (WeightOverride) TableName() string {
	return "weight_overrides"
}

// Expired 是否已过期
func (o *WeightOverride) Expired(now time.Time) bool {
	return !o.ExpiresAt.After(now)
}

// Weights 转换为引擎权重
func (o *WeightOverride) Weights() ranking.Weights {
	return ranking.Weights{
		Recency:         o.Recency,
		Engagement:      o.Engagement,
		Relevance:       o.Relevance,
		AuthorInfluence: o.AuthorInfluence,
	}
}
