package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type ModerationHandler struct {
	service service.ModerationService
}

func NewModerationHandler(service service.ModerationService) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// Decide handles POST /api/v1/messages/:message_id/decision
// The forum owner approves or rejects the message's pending version.
func (h *ModerationHandler) Decide(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	var req domain.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	if err := h.service.Decide(messageID, *req.Approve, middleware.GetUserID(c)); err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	middleware.CountModerationDecision(*req.Approve)
	common.SuccessResponse(c, gin.H{"message_id": messageID, "approved": *req.Approve}, nil)
}
