package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	service service.RatingService
}

func NewRatingHandler(service service.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// Rate handles PUT /api/v1/messages/:message_id/rating
func (h *RatingHandler) Rate(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	var req domain.RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	agg, err := h.service.Rate(messageID, middleware.GetUserID(c), req.Value)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, agg, nil)
}

// Unrate handles DELETE /api/v1/messages/:message_id/rating
func (h *RatingHandler) Unrate(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	agg, err := h.service.Unrate(messageID, middleware.GetUserID(c))
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, agg, nil)
}

// GetRating handles GET /api/v1/messages/:message_id/rating
func (h *RatingHandler) GetRating(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	agg, err := h.service.Aggregate(messageID)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, agg, nil)
}
