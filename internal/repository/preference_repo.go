package repository

import (
	"Halcyon/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepo interface {
	// GetPreference 加载用户偏好画像，不存在返回 (nil, nil)
	GetPreference(ctx context.Context, userID uint64) (*model.UserPreference, error)
	// SavePreference 整行覆盖式保存画像快照
	SavePreference(ctx context.Context, pref *model.UserPreference) error
}

type preferenceRepoImpl struct {
	db *gorm.DB
}

func NewPreferenceRepo(db *gorm.DB) PreferenceRepo {
	return &preferenceRepoImpl{db: db}
}

func (r *preferenceRepoImpl) GetPreference(ctx context.Context, userID uint64) (*model.UserPreference, error) {
	var pref model.UserPreference
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepoImpl) SavePreference(ctx context.Context, pref *model.UserPreference) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category_interest", "author_affinity", "last_interaction_at", "updated_at"}),
	}).Create(pref).Error
}
