package middleware

import (
	"context"

	"ggenius-website/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestID tags every request with an id, reusing a sane inbound
// X-Request-ID. The id is set on the gin context, the request context and
// the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(domain.RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), domain.KeyRequestID, id))
		c.Header(domain.RequestIDHeader, id)

		c.Next()
	}
}
