package handler

import (
	"Halcyon/internal/pkg/response"
	"Halcyon/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsSvc: analyticsSvc,
	}
}

// GetAnalytics 用户内容表现概览
func (s *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	userID := c.GetUint64("user_id")
	timeframe := c.Query("timeframe")

	result, err := s.analyticsSvc.GetAnalytics(c.Request.Context(), userID, timeframe)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
