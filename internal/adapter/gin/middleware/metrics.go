package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"land-marketplace-service/pkg/metrics"
)

// Metrics records in-flight, count and latency per matched route.
// Unmatched requests share one label so path scans cannot blow up cardinality.
// Register it before Recovery so a recovered panic is counted as a 500.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		start := time.Now()
		m.RequestStarted()
		defer func() {
			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			m.RequestFinished(c.Request.Method, route, c.Writer.Status(), time.Since(start))
		}()

		c.Next()
	}
}
