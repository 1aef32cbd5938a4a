package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ecolake/ecolake-backend-go/pkg/logger"
)

// Logger middleware logs HTTP requests through zap
func Logger() gin.HandlerFunc {
	log := logger.GetLogger("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		clientIP := c.ClientIP()
		method := c.Request.Method

		if raw != "" {
			path = path + "?" + raw
		}

		log.Infof("[%s] %s %s %d %v %s",
			method,
			path,
			clientIP,
			statusCode,
			latency,
			c.Errors.String(),
		)
	}
}
