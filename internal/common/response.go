package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response structure
type APIResponse struct {
	Data  interface{} `json:"data"`
	Meta  *Meta       `json:"meta,omitempty"`
	Error *ErrorInfo  `json:"error,omitempty"`
}

// Meta pagination and additional metadata. Counters keep their zero
// values in the output; an empty page still reports limit and total.
type Meta struct {
	ForumID uint64 `json:"forum_id,omitempty"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
	Total   int64  `json:"total"`
}

// ErrorInfo error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse returns a successful JSON response
func SuccessResponse(c *gin.Context, data interface{}, meta *Meta) {
	c.JSON(http.StatusOK, APIResponse{
		Data: data,
		Meta: meta,
	})
}

// CreatedResponse returns a 201 JSON response
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Data: data})
}

// ErrorResponse returns an error JSON response
func ErrorResponse(c *gin.Context, status int, message string, err error) {
	errInfo := &ErrorInfo{
		Code:    getErrorCode(status, err),
		Message: message,
	}
	if err != nil {
		errInfo.Details = err.Error()
	}

	c.JSON(status, gin.H{
		"error": errInfo,
	})
}

// DomainErrorResponse maps a business error to its HTTP status and code
func DomainErrorResponse(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrForbiddenOperation):
		ErrorResponse(c, http.StatusForbidden, "Operation not permitted for this actor", err)
	case errors.Is(err, ErrUserBanned):
		ErrorResponse(c, http.StatusForbidden, "User is temporarily banned", err)
	case errors.Is(err, ErrUserPermanentlyBanned):
		ErrorResponse(c, http.StatusForbidden, "User is permanently banned", err)
	case errors.Is(err, ErrMessageNotFound),
		errors.Is(err, ErrForumNotFound),
		errors.Is(err, ErrUserNotFound):
		ErrorResponse(c, http.StatusNotFound, "Resource not found", err)
	case errors.Is(err, ErrMessageAlreadyPublished),
		errors.Is(err, ErrMessageNotPublished),
		errors.Is(err, ErrMessageHasComments),
		errors.Is(err, ErrForumReadOnly),
		errors.Is(err, ErrNoPendingVersion):
		ErrorResponse(c, http.StatusConflict, "Operation conflicts with current state", err)
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRating):
		ErrorResponse(c, http.StatusBadRequest, "Invalid input", err)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// getErrorCode generates an error code from the error or HTTP status
func getErrorCode(status int, err error) string {
	switch {
	case errors.Is(err, ErrForbiddenOperation):
		return "FORBIDDEN_OPERATION"
	case errors.Is(err, ErrUserBanned):
		return "USER_BANNED"
	case errors.Is(err, ErrUserPermanentlyBanned):
		return "USER_PERMANENTLY_BANNED"
	case errors.Is(err, ErrMessageNotFound):
		return "MESSAGE_NOT_FOUND"
	case errors.Is(err, ErrForumNotFound):
		return "FORUM_NOT_FOUND"
	case errors.Is(err, ErrUserNotFound):
		return "USER_NOT_FOUND"
	case errors.Is(err, ErrMessageAlreadyPublished):
		return "MESSAGE_ALREADY_PUBLISHED"
	case errors.Is(err, ErrMessageNotPublished):
		return "MESSAGE_NOT_PUBLISHED"
	case errors.Is(err, ErrMessageHasComments):
		return "MESSAGE_HAS_COMMENTS"
	case errors.Is(err, ErrForumReadOnly):
		return "FORUM_READ_ONLY"
	case errors.Is(err, ErrNoPendingVersion):
		return "NO_PENDING_VERSION"
	}

	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "ERROR"
	}
}
