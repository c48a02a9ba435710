package handler

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/pkg/response"
	"Halcyon/internal/pkg/util"
	"Halcyon/internal/service"

	"github.com/gin-gonic/gin"
)

type InteractionHandler struct {
	interactionSvc service.InteractionService
}

func NewInteractionHandler(interactionSvc service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionSvc: interactionSvc,
	}
}

// Record 同步上报一次互动
func (s *InteractionHandler) Record(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var req dto.InteractionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	err := s.interactionSvc.Record(c.Request.Context(), userID, req.PostID, req.Type)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
