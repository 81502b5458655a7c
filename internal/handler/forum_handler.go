package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type ForumHandler struct {
	service service.ForumService
}

func NewForumHandler(service service.ForumService) *ForumHandler {
	return &ForumHandler{service: service}
}

// CreateForum handles POST /api/v1/forums
func (h *ForumHandler) CreateForum(c *gin.Context) {
	var req domain.CreateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	forum, err := h.service.Create(&req, middleware.GetUserID(c))
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.CreatedResponse(c, forum)
}

// ListForums handles GET /api/v1/forums
func (h *ForumHandler) ListForums(c *gin.Context) {
	offset := ginutil.QueryInt(c, "offset", 0)
	limit := ginutil.QueryInt(c, "limit", 20)

	forums, meta, err := h.service.List(offset, limit)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, forums, meta)
}

// GetForum handles GET /api/v1/forums/:forum_id
func (h *ForumHandler) GetForum(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "forum_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid forum ID", err)
		return
	}

	forum, err := h.service.Get(id)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, forum, nil)
}

// UpdateForum handles PATCH /api/v1/forums/:forum_id
func (h *ForumHandler) UpdateForum(c *gin.Context) {
	id, err := ginutil.ParamUint64(c, "forum_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid forum ID", err)
		return
	}

	var req domain.UpdateForumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	forum, err := h.service.Update(id, &req, middleware.GetUserID(c))
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, forum, nil)
}
