package common

import "errors"

// Business logic errors
var (
	// Auth errors
	ErrForbiddenOperation = errors.New("forbidden operation")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Ban errors
	ErrUserBanned            = errors.New("user is banned")
	ErrUserPermanentlyBanned = errors.New("user is permanently banned")

	// Not found errors
	ErrMessageNotFound = errors.New("message not found")
	ErrForumNotFound   = errors.New("forum not found")
	ErrUserNotFound    = errors.New("user not found")

	// State conflict errors
	ErrMessageAlreadyPublished = errors.New("message is already published")
	ErrMessageNotPublished     = errors.New("message is not published")
	ErrMessageHasComments      = errors.New("message has comments")
	ErrForumReadOnly           = errors.New("forum is read-only")
	ErrNoPendingVersion        = errors.New("message has no pending version")

	// Validation errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidRating = errors.New("rating value must be between 1 and 5")
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("expired token")
)
