package server

import (
	"time"

	"car-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs every request once the handler chain
// finishes, with timing and any errors the handlers attached.
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next()

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
		"client":  c.ClientIP(),
	}
	if len(c.Errors) > 0 {
		fields["errors"] = c.Errors.String()
	}
	utils.Info("http request", fields)
}
