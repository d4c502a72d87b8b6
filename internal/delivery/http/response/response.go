package response

import (
	"ggenius-website/internal/domain"

	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	NextStep  string      `json:"next_step,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get(string(domain.KeyRequestID))
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}

// Acknowledge sends a success response that tells the caller what happens next.
func Acknowledge(c *gin.Context, code int, message, nextStep string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		NextStep:  nextStep,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}
