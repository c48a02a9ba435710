package repository

import (
	"Halcyon/internal/model"
	"context"

	"gorm.io/gorm"
)

type UserFollowRepo interface {
	// GetFollowingIDs 用户关注的全部作者 ID，仅看关注流时使用
	GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type userFollowRepoImpl struct {
	db *gorm.DB
}

func NewUserFollowRepo(db *gorm.DB) UserFollowRepo {
	return &userFollowRepoImpl{db: db}
}

func (r *userFollowRepoImpl) GetFollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
