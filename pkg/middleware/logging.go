package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"arca/pkg/logger"
	"arca/pkg/metrics"
)

// AccessLog logs each request with its trace id and records its latency.
func AccessLog(log logger.Logger, m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		elapsed := time.Since(start)
		m.RequestDuration.WithLabelValues(route, strconv.Itoa(status)).Observe(elapsed.Seconds())

		fields := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration", elapsed,
			"trace_id", c.GetString("trace_id"),
			"owner", c.GetString("user_id"),
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", append(fields, "errors", c.Errors.String())...)
			return
		}
		log.Info("request", fields...)
	}
}
