package model

import (
	"Halcyon/internal/ranking"
	"database/sql/driver"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// UserPreference 用户偏好画像快照，由互动记录器读改写
type UserPreference struct {
	UserID            uint64      `gorm:"primaryKey" json:"user_id"`
	CategoryInterest  InterestMap `gorm:"type:json;not null" json:"category_interest"`
	AuthorAffinity    AffinityMap `gorm:"type:json;not null" json:"author_affinity"`
	LastInteractionAt time.Time   `json:"last_interaction_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

// ToProfile 转换为打分引擎使用的只读画像
func (p *UserPreference) ToProfile() *ranking.Profile {
	profile := ranking.NewProfile(p.UserID)
	for k, v := range p.CategoryInterest {
		profile.CategoryInterest[k] = v
	}
	for k, v := range p.AuthorAffinity {
		profile.AuthorAffinity[k] = v
	}
	profile.LastInteractionAt = p.LastInteractionAt
	return profile
}

// FromProfile 回填画像内容，保存前调用
func (p *UserPreference) FromProfile(profile *ranking.Profile) {
	p.CategoryInterest = make(InterestMap, len(profile.CategoryInterest))
	for k, v := range profile.CategoryInterest {
		p.CategoryInterest[k] = v
	}
	p.AuthorAffinity = make(AffinityMap, len(profile.AuthorAffinity))
	for k, v := range profile.AuthorAffinity {
		p.AuthorAffinity[k] = v
	}
	p.LastInteractionAt = profile.LastInteractionAt
}

// InterestMap 品类兴趣: map[category]entry
type InterestMap map[string]ranking.Entry

func (i InterestMap) Value() (driver.Value, error) {
	return json.Marshal(i)
}

func (i *InterestMap) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, i)
}

// AffinityMap 作者亲和度: map[author_id]entry
type AffinityMap map[uint64]ranking.Entry

func (a AffinityMap) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *AffinityMap) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New(fmt.Sprint("Failed to unmarshal JSON value:", value))
	}
	return json.Unmarshal(bytes, a)
}
