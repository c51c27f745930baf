package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-collector/internal/delivery/http/response"
	"go-resume-collector/pkg/apperror"
	"go-resume-collector/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "kind", appErr.Kind,
						"path", c.Request.URL.Path, "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Kind, appErr.Message, appErr.Detail)
			} else {
				// Never expose internal error details to clients. Log the
				// actual error server-side, send a generic message out.
				logger.Log.Error("Unhandled internal error",
					"path", c.Request.URL.Path, "error", err)
				response.Error(c, http.StatusInternalServerError, apperror.KindInternal,
					"An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
