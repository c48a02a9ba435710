package wire

import (
	"Halcyon/internal/api"
	"Halcyon/internal/api/config"
	"Halcyon/internal/api/handler"
	"Halcyon/internal/job"
	"Halcyon/internal/pkg/cron"
	"Halcyon/internal/pkg/kafka"
	"Halcyon/internal/pkg/moderation"
	"Halcyon/internal/ranking"
	"Halcyon/internal/repository"
	"Halcyon/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	rankingCfg := toRankingConfig(cfg.Ranking)
	cacheTTL := time.Duration(cfg.Ranking.TrendingCacheTTLMin) * time.Minute

	postRepo := repository.NewPostRepo(db)
	preferenceRepo := repository.NewPreferenceRepo(db)
	weightRepo := repository.NewWeightRepo(db)
	interactionRepo := repository.NewInteractionRepo(db)
	userFollowRepo := repository.NewUserFollowRepo(db)

	moderationClient := moderation.NewClient(cfg.Moderation)

	weightService := service.NewWeightService(weightRepo, cfg.Ranking.OverrideTTLDays)
	feedService := service.NewFeedService(postRepo, preferenceRepo, userFollowRepo, weightService, moderationClient, rankingCfg, cfg.Ranking.CandidatePoolSize)
	trendingService := service.NewTrendingService(postRepo, rankingCfg, cacheTTL, cfg.Ranking.CandidatePoolSize)
	interactionService := service.NewInteractionService(interactionRepo, preferenceRepo, postRepo, rankingCfg)
	analyticsService := service.NewAnalyticsService(postRepo, interactionRepo, preferenceRepo, rankingCfg)

	handlers := &api.HandlersGroup{
		FeedHandler:        handler.NewFeedHandler(feedService),
		TrendingHandler:    handler.NewTrendingHandler(trendingService),
		InteractionHandler: handler.NewInteractionHandler(interactionService),
		WeightHandler:      handler.NewWeightHandler(weightService),
		AnalyticsHandler:   handler.NewAnalyticsHandler(analyticsService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, interactionService)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(
		job.NewTrendingWarmJob(trendingService),
		job.NewProfileCompactJob(preferenceRepo, rankingCfg),
	)

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}

// toRankingConfig 配置文件字段映射为引擎参数，零值由引擎补默认
func toRankingConfig(cfg config.RankingConfig) ranking.Config {
	return ranking.Config{
		FreshnessHalfLifeHours:  cfg.FreshnessHalfLifeHours,
		EngagementSaturation:    cfg.EngagementSaturation,
		CategoryBlend:           cfg.CategoryBlend,
		AuthorBlend:             cfg.AuthorBlend,
		ModerationPenaltyFactor: cfg.ModerationPenaltyFactor,
		InterestHalfLifeDays:    cfg.InterestHalfLifeDays,
		ReinforcementStep:       cfg.ReinforcementStep,
		AuthorAffinityCap:       cfg.AuthorAffinityCap,
		DiversityWindow:         cfg.DiversityWindow,
		DiversityLookahead:      cfg.DiversityLookahead,
		ViralityReferenceHour:   cfg.ViralityReferenceHour,
		ViralityReferenceDay:    cfg.ViralityReferenceDay,
		ViralityReferenceWeek:   cfg.ViralityReferenceWeek,
		TrendingDefaultLimit:    cfg.TrendingDefaultLimit,
	}.WithDefaults()
}
