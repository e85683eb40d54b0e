package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lawfirm-backend/internal/domain"
)

// SubmissionResponse is the 200 body for a processed consultation request.
// The per-channel booleans reflect notification outcomes; the request itself
// succeeded regardless.
type SubmissionResponse struct {
	Success       bool                      `json:"success"`
	Message       string                    `json:"message"`
	Notifications domain.NotificationReport `json:"notifications"`
}

// StatusResponse is the generic success body for auxiliary endpoints.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the body for every 4xx/5xx.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Submitted sends the consultation success envelope.
func Submitted(c *gin.Context, message string, report domain.NotificationReport) {
	c.JSON(http.StatusOK, SubmissionResponse{
		Success:       true,
		Message:       message,
		Notifications: report,
	})
}

// OK sends a plain success envelope.
func OK(c *gin.Context, code int, message string) {
	c.JSON(code, StatusResponse{Success: true, Message: message})
}

// Error sends an error body
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}
