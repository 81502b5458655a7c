package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	service service.StatisticsService
}

func NewStatisticsHandler(service service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// MessagesRatings handles GET /api/v1/statistics/messages
// Scope is the whole server unless forum_id is given.
func (h *StatisticsHandler) MessagesRatings(c *gin.Context) {
	forumID := ginutil.QueryUint64(c, "forum_id", 0)
	offset := ginutil.QueryInt(c, "offset", 0)
	limit := ginutil.QueryInt(c, "limit", 20)

	rows, meta, err := h.service.MessagesRatings(forumID, offset, limit)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, rows, meta)
}

// UsersRatings handles GET /api/v1/statistics/users
func (h *StatisticsHandler) UsersRatings(c *gin.Context) {
	forumID := ginutil.QueryUint64(c, "forum_id", 0)
	offset := ginutil.QueryInt(c, "offset", 0)
	limit := ginutil.QueryInt(c, "limit", 20)

	rows, meta, err := h.service.UsersRatings(forumID, offset, limit)
	if err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, rows, meta)
}
