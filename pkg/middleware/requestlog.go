package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"tripdesk/pkg/observability"
)

// RequestLogger emits one structured log line per request and feeds the
// HTTP metrics, keyed by route pattern rather than raw path.
func RequestLogger(l zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		status := c.Writer.Status()
		dur := time.Since(start)

		observability.ObserveHTTP(route, c.Request.Method, status, dur)

		l.Info().
			Str("route", route).
			Str("method", c.Request.Method).
			Int("status", status).
			Dur("duration", dur).
			Str("trace_id", c.GetString("trace_id")).
			Str("remote", c.ClientIP()).
			Msg("http_request")
	}
}
