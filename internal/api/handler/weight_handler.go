package handler

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/pkg/response"
	"Halcyon/internal/service"

	"github.com/gin-gonic/gin"
)

type WeightHandler struct {
	weightSvc service.WeightService
}

func NewWeightHandler(weightSvc service.WeightService) *WeightHandler {
	return &WeightHandler{
		weightSvc: weightSvc,
	}
}

// GetWeights 当前生效的排序权重
func (s *WeightHandler) GetWeights(c *gin.Context) {
	userID := c.GetUint64("user_id")

	view, err := s.weightSvc.GetWeights(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

// SetWeights 保存自定义权重，30 天后自动失效
func (s *WeightHandler) SetWeights(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.WeightsDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	view, err := s.weightSvc.SetWeights(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}
