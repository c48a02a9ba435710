package repository

import (
	"Halcyon/internal/model"
	"context"
	"time"

	"gorm.io/gorm"
)

// CategoryCount 品类聚合计数
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DayEngagement 按天聚合的分类型互动计数，day 为 YYYY-MM-DD
type DayEngagement struct {
	Day      string `json:"day"`
	Views    int64  `json:"views"`
	Likes    int64  `json:"likes"`
	Comments int64  `json:"comments"`
	Shares   int64  `json:"shares"`
}

type InteractionRepo interface {
	CreateInteraction(ctx context.Context, interaction *model.Interaction) error
	// CountReceivedByCategory 用户作为作者在窗口内收到的互动按品类聚合
	CountReceivedByCategory(ctx context.Context, authorID uint64, since time.Time) ([]CategoryCount, error)
	// EngagementReceivedByDay 用户作为作者在窗口内收到的互动按天分类型聚合
	EngagementReceivedByDay(ctx context.Context, authorID uint64, since time.Time) ([]DayEngagement, error)
}

type interactionRepoImpl struct {
	db *gorm.DB
}

func NewInteractionRepo(db *gorm.DB) InteractionRepo {
	return &interactionRepoImpl{db: db}
}

func (r *interactionRepoImpl) CreateInteraction(ctx context.Context, interaction *model.Interaction) error {
	return r.db.WithContext(ctx).Create(interaction).Error
}

func (r *interactionRepoImpl) EngagementReceivedByDay(ctx context.Context, authorID uint64, since time.Time) ([]DayEngagement, error) {
	var buckets []DayEngagement
	err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS day, " +
			"SUM(type = 'view') AS views, " +
			"SUM(type = 'like') AS likes, " +
			"SUM(type = 'comment') AS comments, " +
			"SUM(type = 'share') AS shares").
		Where("author_id = ? AND created_at >= ?", authorID, since).
		Group("day").
		Order("day ASC").
		Scan(&buckets).Error
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

func (r *interactionRepoImpl) CountReceivedByCategory(ctx context.Context, authorID uint64, since time.Time) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).
		Model(&model.Interaction{}).
		Select("category, COUNT(*) AS count").
		Where("author_id = ? AND created_at >= ? AND category <> ''", authorID, since).
		Group("category").
		Order("count DESC").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
