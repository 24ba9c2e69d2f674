package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message     string   `json:"message"`
	Kind        string   `json:"kind,omitempty"`
	ConflictIDs []string `json:"conflict_ids,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// statusForKind maps the service error taxonomy onto HTTP statuses. The
// mapping lives here so services never reason about transport codes.
func statusForKind(kind ErrorKind) int {
	switch kind {
	case KindValidation, KindInvalidTransition:
		return http.StatusBadRequest
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindDatabase:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// RespondError translates a service error into a JSON error response.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var ae *AppError
	if !errors.As(err, &ae) {
		logger.Error("unclassified error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
		return
	}

	status := statusForKind(ae.Kind)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("kind", string(ae.Kind)), zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.String("kind", string(ae.Kind)), zap.String("message", ae.Message))
	}

	c.JSON(status, ErrorResponse{
		Message:     ae.Message,
		Kind:        string(ae.Kind),
		ConflictIDs: ae.ConflictIDs,
	})
}
