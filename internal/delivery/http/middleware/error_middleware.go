package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/pkg/apperror"
	"recruitment-portal-api/pkg/logger"
)

// ErrorHandler maps errors attached to the context onto the error envelope.
// Classified failures keep their status and code; anything else is logged
// server-side and surfaced as a generic 500 so internals never leak.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				reqID, _ := c.Get("RequestID")
				logger.Log.Error("request failed",
					"error", appErr.Err.Error(),
					"errorCode", appErr.ErrorCode,
					"path", c.FullPath(),
					"request_id", reqID,
				)
			}
			response.Error(c, appErr.Status, appErr.ErrorCode, appErr.Message, appErr.Errors)
			return
		}

		reqID, _ := c.Get("RequestID")
		logger.Log.Error("unexpected error",
			"error", err.Error(),
			"path", c.FullPath(),
			"request_id", reqID,
		)
		response.Error(c, http.StatusInternalServerError, apperror.CodeDatabase,
			"An unexpected error occurred", nil)
	}
}
