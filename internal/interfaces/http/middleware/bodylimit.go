package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerline/backend/internal/interfaces/http/dto"
)

// BodyLimit caps request body size; oversized bodies fail at read time
// inside the handlers, declared sizes are rejected up front.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodeBodyTooLarge, "request body too large"))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
