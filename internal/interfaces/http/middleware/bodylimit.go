package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textile/backend/internal/interfaces/http/dto"
)

// DefaultMaxBodySize is the default request body limit (1 MiB).
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimit rejects requests whose body exceeds maxBytes. A declared
// Content-Length above the limit is rejected up front; chunked bodies are
// capped by MaxBytesReader and fail at read time.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(
				dto.ErrCodeBadRequest,
				"request body too large",
			))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
