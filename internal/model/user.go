package model

import "time"

type User struct {
	ID       uint64 `gorm:"primaryKey"`
	Username string `gorm:"type:varchar(64);not null;uniqueIndex" json:"username"`
	Nickname string `gorm:"type:varchar(64)" json:"nickname"`
	// 作者影响力标记，由账号体系维护
	IsVerified     bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_verified"`
	IsInfluencer   bool      `gorm:"type:tinyint(1);not null;default:0" json:"is_influencer"`
	FollowerTier   string    `gorm:"type:varchar(16);not null;default:'none'" json:"follower_tier"` // none/small/medium/large
	FollowersCount int64     `gorm:"not null;default:0" json:"followers_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
