package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	service service.TreeService
}

func NewThreadHandler(service service.TreeService) *ThreadHandler {
	return &ThreadHandler{service: service}
}

// CreateThread handles POST /api/v1/forums/:forum_id/threads
func (h *ThreadHandler) CreateThread(c *gin.Context) {
	forumID, err := ginutil.ParamUint64(c, "forum_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid forum ID", err)
		return
	}

	var req domain.CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	thread, err := h.service.CreateRoot(forumID, middleware.GetUserID(c), &req)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.CreatedResponse(c, thread)
}

// GetThread handles GET /api/v1/threads/:thread_id
func (h *ThreadHandler) GetThread(c *gin.Context) {
	threadID, err := ginutil.ParamUint64(c, "thread_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid thread ID", err)
		return
	}

	thread, err := h.service.GetThread(threadID)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, thread, nil)
}

// ChangePriority handles PATCH /api/v1/threads/:thread_id/priority
func (h *ThreadHandler) ChangePriority(c *gin.Context) {
	threadID, err := ginutil.ParamUint64(c, "thread_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid thread ID", err)
		return
	}

	var req domain.ChangePriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	if err := h.service.ChangePriority(threadID, req.Priority, middleware.GetUserID(c)); err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"thread_id": threadID, "priority": req.Priority}, nil)
}
