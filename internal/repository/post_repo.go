package repository

import (
	"Halcyon/internal/model"
	"Halcyon/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// CandidateFilter 候选池筛选条件，由调用方在边界层组装
type CandidateFilter struct {
	Since       time.Time
	Category    string
	LocationTag string
	AuthorIDs   []uint64
	ExcludeIDs  []uint64
	Limit       int
}

type PostRepo interface {
	// FetchCandidates 返回时间窗口内可参与排序的帖子池
	FetchCandidates(ctx context.Context, filter CandidateFilter) ([]*model.Post, error)
	GetPost(ctx context.Context, postID uint64) (*model.Post, error)
	GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error)
	// GetUserPostsSince 某用户在窗口内发布的全部帖子，分析聚合用
	GetUserPostsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.Post, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

func (r *postRepoImpl) FetchCandidates(ctx context.Context, filter CandidateFilter) ([]*model.Post, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Where("status = ?", consts.PostStatusNormal).
		Where("created_at >= ?", filter.Since)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.LocationTag != "" {
		query = query.Where("location_tag = ?", filter.LocationTag)
	}
	if len(filter.AuthorIDs) > 0 {
		query = query.Where("user_id IN ?", filter.AuthorIDs)
	}
	if len(filter.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", filter.ExcludeIDs)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var posts []*model.Post
	err := query.Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepoImpl) GetPost(ctx context.Context, postID uint64) (*model.Post, error) {
	var post model.Post
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", postID).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (r *postRepoImpl) GetPostByIds(ctx context.Context, ids []uint64) ([]*model.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var posts []*model.Post
	err := r.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepoImpl) GetUserPostsSince(ctx context.Context, userID uint64, since time.Time) ([]*model.Post, error) {
	var posts []*model.Post
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
