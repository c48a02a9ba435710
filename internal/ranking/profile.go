package ranking

import (
	"math"
	"time"
)

// InteractionType 互动类型
type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionLike    InteractionType = "like"
	InteractionComment InteractionType = "comment"
	InteractionShare   InteractionType = "share"
)

// InteractionWeight 各互动类型的相对权重，未知类型返回 0
func InteractionWeight(t InteractionType) float64 {
	switch t {
	case InteractionView:
		return 1
	case InteractionLike:
		return 3
	case InteractionComment:
		return 5
	case InteractionShare:
		return 7
	}
	return 0
}

// Entry 偏好表中的单个条目，记录上次强化时间以便懒衰减
type Entry struct {
	Weight    float64   `json:"weight"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile 用户偏好画像，由互动记录器维护、打分引擎只读
type Profile struct {
	UserID            uint64
	CategoryInterest  map[string]Entry
	AuthorAffinity    map[uint64]Entry
	LastInteractionAt time.Time
}

// NewProfile 空画像，冷启动用户的初始状态
func NewProfile(userID uint64) *Profile {
	return &Profile{
		UserID:           userID,
		CategoryInterest: make(map[string]Entry),
		AuthorAffinity:   make(map[uint64]Entry),
	}
}

// DecayedWeight 读取时应用半衰期衰减，不回写存储
func DecayedWeight(e Entry, now time.Time, halfLifeDays float64) float64 {
	if e.Weight <= 0 {
		return 0
	}
	days := now.Sub(e.UpdatedAt).Hours() / 24
	if days <= 0 {
		return e.Weight
	}
	return e.Weight * math.Pow(0.5, days/halfLifeDays)
}

// CategoryWeight 某品类的当前兴趣值，未知品类为 0
func (p *Profile) CategoryWeight(category string, now time.Time, cfg Config) float64 {
	if p == nil || category == "" {
		return 0
	}
	e, ok := p.CategoryInterest[category]
	if !ok {
		return 0
	}
	return DecayedWeight(e, now, cfg.InterestHalfLifeDays)
}

// AuthorWeight 某作者的当前亲和度，未知作者为 0
func (p *Profile) AuthorWeight(authorID uint64, now time.Time, cfg Config) float64 {
	if p == nil || authorID == 0 {
		return 0
	}
	e, ok := p.AuthorAffinity[authorID]
	if !ok {
		return 0
	}
	return DecayedWeight(e, now, cfg.InterestHalfLifeDays)
}

// Reinforce 按互动权重做加性强化。单条目裁剪到 1.0 而不做全局归一化，
// 避免单一强势品类把新品类挤出画像。
func (p *Profile) Reinforce(category string, authorID uint64, t InteractionType, now time.Time, cfg Config) {
	step := cfg.ReinforcementStep * InteractionWeight(t)
	if step <= 0 {
		return
	}

	if category != "" {
		prev := p.CategoryWeight(category, now, cfg)
		p.CategoryInterest[category] = Entry{
			Weight:    clamp(prev+step, 0, 1),
			UpdatedAt: now,
		}
	}

	if authorID != 0 {
		prev := p.AuthorWeight(authorID, now, cfg)
		p.AuthorAffinity[authorID] = Entry{
			Weight:    clamp(prev+step, 0, 1),
			UpdatedAt: now,
		}
		p.evictAffinity(cfg.AuthorAffinityCap)
	}

	p.LastInteractionAt = now
}

// evictAffinity 亲和度表超限时淘汰最久未强化的条目，保持画像大小恒定
func (p *Profile) evictAffinity(cap int) {
	for len(p.AuthorAffinity) > cap {
		var oldestID uint64
		var oldestAt time.Time
		first := true
		for id, e := range p.AuthorAffinity {
			if first || e.UpdatedAt.Before(oldestAt) {
				oldestID = id
				oldestAt = e.UpdatedAt
				first = false
			}
		}
		delete(p.AuthorAffinity, oldestID)
	}
}

// PersonalizationScore 画像集中度 0-1：接近 1 表示兴趣高度集中，
// 接近 0 表示冷启动或近似均匀分布。采用归一化 Herfindahl 指数。
func (p *Profile) PersonalizationScore(now time.Time, cfg Config) float64 {
	if p == nil || len(p.CategoryInterest) == 0 {
		return 0
	}

	var total float64
	weights := make([]float64, 0, len(p.CategoryInterest))
	for _, e := range p.CategoryInterest {
		w := DecayedWeight(e, now, cfg.InterestHalfLifeDays)
		if w > 0 {
			weights = append(weights, w)
			total += w
		}
	}
	if total == 0 {
		return 0
	}
	if len(weights) == 1 {
		return 1
	}

	var h float64
	for _, w := range weights {
		share := w / total
		h += share * share
	}

	n := float64(len(weights))
	return clamp((h-1/n)/(1-1/n), 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
