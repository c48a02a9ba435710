package api

import "Halcyon/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	FeedHandler        *handler.FeedHandler
	TrendingHandler    *handler.TrendingHandler
	InteractionHandler *handler.InteractionHandler
	WeightHandler      *handler.WeightHandler
	AnalyticsHandler   *handler.AnalyticsHandler
}
