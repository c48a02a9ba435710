package handler

import (
	"Halcyon/internal/api/dto"
	"Halcyon/internal/pkg/response"
	"Halcyon/internal/pkg/util"
	"Halcyon/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedHandler struct {
	feedSvc service.FeedService
}

func NewFeedHandler(feedSvc service.FeedService) *FeedHandler {
	return &FeedHandler{
		feedSvc: feedSvc,
	}
}

// GetFeed 个性化信息流
func (s *FeedHandler) GetFeed(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var query dto.FeedQueryDTO
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&query); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	page, err := s.feedSvc.GetFeed(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
