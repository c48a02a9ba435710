package model

import "time"

type UserFollow struct {
	ID          uint64    `gorm:"primaryKey"`
	FollowerID  uint64    `gorm:"not null;uniqueIndex:uk_follower_following,priority:1" json:"follower_id"`
	FollowingID uint64    `gorm:"not null;uniqueIndex:uk_follower_following,priority:2" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
