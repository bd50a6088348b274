package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	applog "github.com/todoapi/backend/internal/infrastructure/log"
)

// RequestLogger 结构化请求日志中间件
func RequestLogger() gin.HandlerFunc {
	logger := applog.NewModuleLogger("http", "access")

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"client", c.ClientIP(),
		)
	}
}
