package handler

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/pkg/response"
	"Halcyon/internal/pkg/util"
	"Halcyon/internal/service"

	"github.com/gin-gonic/gin"
)

type TrendingHandler struct {
	trendingSvc service.TrendingService
}

func NewTrendingHandler(trendingSvc service.TrendingService) *TrendingHandler {
	return &TrendingHandler{
		trendingSvc: trendingSvc,
	}
}

// GetTrending 全站趋势榜单，匿名可访问
func (s *TrendingHandler) GetTrending(c *gin.Context) {
	var query dto.TrendingQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	items, err := s.trendingSvc.GetTrending(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, items)
}
