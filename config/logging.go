package config

import (
	"time"

	"github.com/gin-gonic/gin"

	"salonbook-backend/logger"
)

// RequestLogger logs every request with timing and flags slow ones.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
		)

		if latency > 200*time.Millisecond {
			log.Warn("slow request",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"latency_ms", latency.Milliseconds(),
			)
		}
	}
}
