package middleware

import (
	"strconv"
	"time"

	"parkstay/internal/metrics"

	"github.com/gin-gonic/gin"
)

// MetricsMiddleware labels by route template so path ids don't explode cardinality.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.RequestLatency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
