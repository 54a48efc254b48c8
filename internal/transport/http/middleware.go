package http

import (
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger logs basic request details and latency, tagged with a
// per-request ID that is also echoed back in X-Request-Id.
func RequestLogger(logger *charmlog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = charmlog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		logger.Info("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
