package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-sparkshield-backend/internal/delivery/http/response"
	"go-sparkshield-backend/pkg/apperror"
	"go-sparkshield-backend/pkg/logger"
)

// ErrorHandler maps errors attached to the gin context onto the public error
// body. Causes are logged with full detail server-side; callers only see the
// AppError message (plus details where a handler set them). Generic errors
// expose their text only when exposeDetails is set.
func ErrorHandler(exposeDetails bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			logger.Log.Error("request failed",
				"request_id", requestID,
				"path", c.Request.URL.Path,
				"status", appErr.Code,
				"error", appErr.Message,
				"cause", appErr.Err,
			)
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		logger.Log.Error("unhandled error",
			"request_id", requestID,
			"path", c.Request.URL.Path,
			"error", err,
		)
		details := ""
		if exposeDetails {
			details = err.Error()
		}
		response.Error(c, http.StatusInternalServerError, "Internal server error", details)
	}
}
