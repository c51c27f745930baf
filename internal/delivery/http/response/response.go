package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody standardizes the API error JSON
type ErrorBody struct {
	Error     string      `json:"error"`
	Message   string      `json:"message"`
	Detail    interface{} `json:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// Error sends the uniform error body
func Error(c *gin.Context, code int, kind, message string, detail interface{}) {
	c.JSON(code, ErrorBody{
		Error:     kind,
		Message:   message,
		Detail:    detail,
		Timestamp: time.Now(),
	})
}
