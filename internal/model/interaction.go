package model

import "time"

// Interaction 互动流水，追加写入，供分析聚合使用
type Interaction struct {
	ID        uint64    `gorm:"primaryKey"`
	UserID    uint64    `gorm:"not null;index:idx_user_created,priority:1" json:"user_id"`
	PostID    uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	Category  string    `gorm:"type:varchar(64)" json:"category"`
	Type      string    `gorm:"type:varchar(16);not null" json:"type"` // view/like/comment/share
	CreatedAt time.Time `gorm:"index:idx_user_created,priority:2" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}
