package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shario-backend/internal/delivery/http/response"
	"shario-backend/pkg/apperror"
	"shario-backend/pkg/logger"
)

// ErrorHandler renders errors pushed onto the gin context. Known AppErrors
// map to their status code; anything else becomes a generic 500 so internal
// details are logged server-side but never leak to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled request error",
			"error", err,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
