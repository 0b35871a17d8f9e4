package middleware

import (
	"microblog/util/random"

	"github.com/gin-gonic/gin"
)

const requestIdHeader = "X-Request-Id"

// RequestID attaches an opaque id to every request for log correlation,
// honoring an id supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = random.Seq(16)
		}
		c.Set("request_id", id)
		c.Header(requestIdHeader, id)
		c.Next()
	}
}
