package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// RequestLogger writes one structured event per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		event := log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Str("ip", c.ClientIP())

		if reqID := GetRequestID(c); reqID != "" {
			event = event.Str("request_id", reqID)
		}
		if ua := c.Request.UserAgent(); ua != "" {
			event = event.Str("user_agent", ua)
		}

		event.Msg("http_request")
	}
}
