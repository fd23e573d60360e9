package middleware

import (
	"github.com/gin-gonic/gin"
	"edu-connect.backend/internal/metrics"
)

// MetricsMiddleware records the status code of every response
func MetricsMiddleware(recorder metrics.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		recorder.RecordHTTPStatus(c.Writer.Status())
	}
}
