package model

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

type Post struct {
	ID            uint64     `gorm:"primaryKey"`
	UserID        uint64     `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title         string     `gorm:"type:varchar(255)" json:"title"`
	Content       string     `gorm:"not null" json:"content"`
	Category      string     `gorm:"type:varchar(64);not null;index:idx_category" json:"category"`
	LocationTag   string     `gorm:"type:varchar(128);index:idx_location" json:"location_tag"`
	Hashtags      StringList `gorm:"type:json" json:"hashtags"`
	LikesCount    int64      `gorm:"not null;default:0" json:"likes_count"`
	CommentsCount int64      `gorm:"not null;default:0" json:"comments_count"`
	SharesCount   int64      `gorm:"not null;default:0" json:"shares_count"`
	ViewsCount    int64      `gorm:"not null;default:0" json:"views_count"`
	// QualityScore 外部预计算的质量分 0-100，缺省 50
	QualityScore float64   `gorm:"not null;default:50" json:"quality_score"`
	Status       int8      `gorm:"not null;default:1" json:"status"` // 1:已发布, 2:已隐藏
	CreatedAt    time.Time `gorm:"index:idx_created_at" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}

// StringList 以 JSON 数组存储的字符串列表
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, l)
}
