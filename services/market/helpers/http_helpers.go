package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"meme-market/internal/marketerrors"
	"meme-market/utils"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, marketerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, marketerrors.ErrMemeNotFound):
		return http.StatusNotFound, "meme not found"
	case errors.Is(err, marketerrors.ErrInvalidAmount):
		return http.StatusBadRequest, "bid amount must be positive"
	case errors.Is(err, marketerrors.ErrInsufficientCredits):
		return http.StatusBadRequest, "insufficient credits"
	case errors.Is(err, marketerrors.ErrBidTooLow):
		return http.StatusBadRequest, "bid must be higher than current bid"
	case errors.Is(err, marketerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, marketerrors.ErrConflictingState):
		return http.StatusConflict, "conflicting state"
	case errors.Is(err, marketerrors.ErrUnavailable):
		return http.StatusServiceUnavailable, "record store unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
