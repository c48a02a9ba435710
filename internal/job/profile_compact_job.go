package job

import (
	"Halcyon/internal/pkg/consts"
	"Halcyon/internal/pkg/logger"
	"Halcyon/internal/pkg/redis"
	"Halcyon/internal/pkg/util"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// 衰减后低于该值的条目不再影响排序，直接从画像中清除
const compactThreshold = 0.01

// ProfileCompactJob 画像压实：兴趣衰减是读取时懒计算的，长期不互动的
// 条目只会无限趋近于零而不会消失，这里把它们物理清掉并回写快照。
type ProfileCompactJob struct {
	preferenceRepo repository.PreferenceRepo
	rankingCfg     ranking.Config
}

func NewProfileCompactJob(preferenceRepo repository.PreferenceRepo, rankingCfg ranking.Config) *ProfileCompactJob {
	return &ProfileCompactJob{
		preferenceRepo: preferenceRepo,
		rankingCfg:     rankingCfg.WithDefaults(),
	}
}

func (s *ProfileCompactJob) Run() {
	traceID := "job-profile-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.ProfileDirtyKey + ":processing"
	if err := redis.Rename(ctx, consts.ProfileDirtyKey, processingKey); err != nil {
		// 脏集合为空属于常态
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get profile dirty set error", "err", err)
		return
	}

	userIDs, err := util.StrSliceToUInt64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert profile dirty set error", "err", err)
		return
	}

	log.InfoContext(ctx, "ProfileCompactJob processing", "user_count", len(userIDs))

	now := time.Now()
	for _, uid := range userIDs {
		if err = s.compactOne(ctx, uid, now); err != nil {
			log.ErrorContext(ctx, "compact profile error", "uid", uid, "err", err)
		}
	}

	_ = redis.DeleteKey(ctx, processingKey)
}

func (s *ProfileCompactJob) compactOne(ctx context.Context, userID uint64, now time.Time) error {
	pref, err := s.preferenceRepo.GetPreference(ctx, userID)
	if err != nil {
		return err
	}
	if pref == nil {
		return nil
	}

	changed := false
	for category, entry := range pref.CategoryInterest {
		if ranking.DecayedWeight(entry, now, s.rankingCfg.InterestHalfLifeDays) < compactThreshold {
			delete(pref.CategoryInterest, category)
			changed = true
		}
	}
	for authorID, entry := range pref.AuthorAffinity {
		if ranking.DecayedWeight(entry, now, s.rankingCfg.InterestHalfLifeDays) < compactThreshold {
			delete(pref.AuthorAffinity, authorID)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	pref.UpdatedAt = now
	return s.preferenceRepo.SavePreference(ctx, pref)
}
