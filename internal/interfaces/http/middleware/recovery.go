package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	applog "github.com/todoapi/backend/internal/infrastructure/log"
	"github.com/todoapi/backend/internal/interfaces/http/response"
)

// Recovery 捕获 panic 并返回统一的 500 响应
// dev 为 true 时响应携带 panic 详情，生产环境只返回通用信息
func Recovery(dev bool) gin.HandlerFunc {
	logger := applog.NewModuleLogger("http", "recovery")

	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"panic", r,
				)

				if dev {
					response.ErrorWithMessage(c, http.StatusInternalServerError,
						"服务器内部错误", fmt.Sprint(r))
				} else {
					response.Error(c, http.StatusInternalServerError, "服务器内部错误")
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}
