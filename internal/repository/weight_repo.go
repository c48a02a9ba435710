package repository

import (
	"Halcyon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightRepo interface {
	// GetOverride 读取用户权重覆盖，不存在返回 (nil, nil)；过期判断在服务层
	GetOverride(ctx context.Context, userID uint64) (*model.WeightOverride, error)
	// SaveOverride 新建或替换，单用户至多一条生效记录
	SaveOverride(ctx context.Context, override *model.WeightOverride) error
}

type weightRepoImpl struct {
	db *gorm.DB
}

func NewWeightRepo(db *gorm.DB) WeightRepo {
	return &weightRepoImpl{db: db}
}

func (r *weightRepoImpl) GetOverride(ctx context.Context, userID uint64) (*model.WeightOverride, error) {
	var override model.WeightOverride
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&override).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &override, nil
}

func (r *weightRepoImpl) SaveOverride(ctx context.Context, override *model.WeightOverride) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"recency", "engagement", "relevance", "author_influence", "expires_at", "updated_at"}),
	}).Create(override).Error
}
