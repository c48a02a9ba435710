package service

import (
	"Halcyon/internal/model"
	"Halcyon/internal/pkg/consts"
	"Halcyon/internal/pkg/redis"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const preferenceLockTTL = 3 * time.Second

type InteractionService interface {
	// Record 记录一次互动并同步强化用户画像。
	// 校验全部通过之前不发生任何写入；存储失败原样上抛，不做静默降级。
	Record(ctx context.Context, userID, postID uint64, interactionType string) error
}

type interactionServiceImpl struct {
	interactionRepo repository.InteractionRepo
	preferenceRepo  repository.PreferenceRepo
	postRepo        repository.PostRepo
	rankingCfg      ranking.Config
}

func NewInteractionService(
	interactionRepo repository.InteractionRepo,
	preferenceRepo repository.PreferenceRepo,
	postRepo repository.PostRepo,
	rankingCfg ranking.Config,
) InteractionService {
	return &interactionServiceImpl{
		interactionRepo: interactionRepo,
		preferenceRepo:  preferenceRepo,
		postRepo:        postRepo,
		rankingCfg:      rankingCfg.WithDefaults(),
	}
}

func (s *interactionServiceImpl) Record(ctx context.Context, userID, postID uint64, interactionType string) error {
	if userID == 0 || postID == 0 {
		return ErrParamInvalid
	}
	t := ranking.InteractionType(interactionType)
	if ranking.InteractionWeight(t) == 0 {
		return ErrInteractionTypeInvalid
	}

	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	// 同一用户的画像读改写需要串行化，避免并发互动互相覆盖
	lockKey := consts.PreferenceLock + strconv.FormatUint(userID, 10)
	lockVal := uuid.NewString()
	ok, err := redis.TryLock(ctx, lockKey, lockVal, preferenceLockTTL, 3)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserBusy
	}
	defer redis.UnLock(ctx, lockKey, lockVal)

	now := time.Now()
	interaction := &model.Interaction{
		UserID:    userID,
		PostID:    postID,
		AuthorID:  post.UserID,
		Category:  post.Category,
		Type:      interactionType,
		CreatedAt: now,
	}
	if err = s.interactionRepo.CreateInteraction(ctx, interaction); err != nil {
		return err
	}

	pref, err := s.preferenceRepo.GetPreference(ctx, userID)
	if err != nil {
		return ErrProfileLoad
	}

	var profile *ranking.Profile
	if pref == nil {
		pref = &model.UserPreference{UserID: userID}
		profile = ranking.NewProfile(userID)
	} else {
		profile = pref.ToProfile()
	}

	profile.Reinforce(post.Category, post.UserID, t, now, s.rankingCfg)

	pref.FromProfile(profile)
	pref.UpdatedAt = now
	if err = s.preferenceRepo.SavePreference(ctx, pref); err != nil {
		return err
	}

	// 脏集合供离线任务增量处理，写失败只影响后台统计
	if err = redis.SAdd(ctx, consts.ProfileDirtyKey, userID); err != nil {
		log.WarnContext(ctx, "画像脏集合写入失败", "userID", userID, "err", err)
	}

	return nil
}
