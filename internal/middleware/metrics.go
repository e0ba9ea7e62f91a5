package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/erp_backoffice/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		m.ObserveHTTP(route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
