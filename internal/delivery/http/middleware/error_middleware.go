package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/pkg/apperror"
	"go-lawfirm-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message)
				return
			}
			// Never expose internal error details to clients. Log the
			// actual error server-side and send a generic message.
			logger.L().Error("unhandled request error", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		}
	}
}
