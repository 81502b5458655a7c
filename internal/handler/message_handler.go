package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	treeService       service.TreeService
	moderationService service.ModerationService
	historyService    service.HistoryService
}

func NewMessageHandler(
	treeService service.TreeService,
	moderationService service.ModerationService,
	historyService service.HistoryService,
) *MessageHandler {
	return &MessageHandler{
		treeService:       treeService,
		moderationService: moderationService,
		historyService:    historyService,
	}
}

// AddComment handles POST /api/v1/messages/:message_id/comments
func (h *MessageHandler) AddComment(c *gin.Context) {
	parentID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	var req domain.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	comment, err := h.treeService.AddComment(parentID, middleware.GetUserID(c), &req)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.CreatedResponse(c, comment)
}

// EditMessage handles PUT /api/v1/messages/:message_id
func (h *MessageHandler) EditMessage(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	var req domain.EditMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	msg, err := h.moderationService.EditMessage(messageID, req.Body, middleware.GetUserID(c))
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, msg, nil)
}

// DeleteMessage handles DELETE /api/v1/messages/:message_id
func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	if err := h.treeService.Delete(messageID, middleware.GetUserID(c)); err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": messageID}, nil)
}

// SplitBranch handles POST /api/v1/messages/:message_id/split
func (h *MessageHandler) SplitBranch(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	var req domain.SplitBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	thread, err := h.treeService.SplitBranch(messageID, middleware.GetUserID(c), &req)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.CreatedResponse(c, thread)
}

// GetHistory handles GET /api/v1/messages/:message_id/history
func (h *MessageHandler) GetHistory(c *gin.Context) {
	messageID, err := ginutil.ParamUint64(c, "message_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid message ID", err)
		return
	}

	versions, err := h.historyService.Versions(messageID)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}
	if len(versions) == 0 {
		common.DomainErrorResponse(c, common.ErrMessageNotFound)
		return
	}

	common.SuccessResponse(c, versions, nil)
}
