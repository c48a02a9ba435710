package job

import (
	"Halcyon/internal/pkg/logger"
	"Halcyon/internal/service"
	"context"
	log "log/slog"

	"github.com/google/uuid"
)

// TrendingWarmJob 周期性预计算趋势榜单，避免缓存过期后的首个请求扛全量计算
type TrendingWarmJob struct {
	trendingService service.TrendingService
}

func NewTrendingWarmJob(trendingService service.TrendingService) *TrendingWarmJob {
	return &TrendingWarmJob{
		trendingService: trendingService,
	}
}

func (s *TrendingWarmJob) Run() {
	traceID := "job-trending-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	if err := s.trendingService.Warm(ctx); err != nil {
		log.ErrorContext(ctx, "trending warm job failed", "err", err)
		return
	}
	log.InfoContext(ctx, "trending warm job done")
}
