package handler

import (
	"github.com/agoraboard/agora-backend/internal/common"
	"github.com/agoraboard/agora-backend/internal/domain"
	"github.com/agoraboard/agora-backend/internal/middleware"
	"github.com/agoraboard/agora-backend/internal/service"
	"github.com/agoraboard/agora-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	userService service.UserService
}

func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// BanUser handles POST /api/v1/admin/users/:user_id/ban
func (h *AdminHandler) BanUser(c *gin.Context) {
	targetID, err := ginutil.ParamUint64(c, "user_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid user ID", err)
		return
	}

	var req domain.BanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	if err := h.userService.Ban(targetID, middleware.GetUserID(c), req.Reason); err != nil {
		common.DomainErrorResponse(c, err)
		return
	}

	common.SuccessResponse(c, gin.H{"banned": targetID}, nil)
}
