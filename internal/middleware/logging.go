package middleware

import (
	"time"

	"attendance-registry/internal/logger"

	"github.com/gin-gonic/gin"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := logger.L.Info()
		if c.Writer.Status() >= 500 {
			ev = logger.L.Error()
		}
		ev.Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("user", CurrentSession(c).Username).
			Msg("request")
	}
}
