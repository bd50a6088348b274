package http

import (
	"context"
	"net/http"

	"log/slog"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/todoapi/backend/internal/infrastructure/config"
	"github.com/todoapi/backend/internal/infrastructure/log"
	"github.com/todoapi/backend/internal/interfaces/http/handler"
	"github.com/todoapi/backend/internal/interfaces/http/middleware"

	_ "github.com/todoapi/backend/docs" // Swagger docs
)

// HTTPServer HTTP 服务器
type HTTPServer struct {
	router   *gin.Engine
	httpPort string
	server   *http.Server
	logger   *slog.Logger
}

// NewServer 创建 HTTP 服务器
func NewServer(
	todoHandler *handler.TodoHandler,
	serverCfg *config.ServerConfig,
	cfg *config.Config,
) *HTTPServer {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	logger := log.NewModuleLogger("http", "server")

	// 安全头、跨域、请求日志、panic 恢复
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery(cfg.IsDevelopment()))

	// 注册路由
	api := router.Group("/api/todos")
	{
		api.GET("", todoHandler.List)
		api.POST("", todoHandler.Create)
		api.DELETE("", todoHandler.DeleteAll)
		api.GET("/stats/overview", todoHandler.StatsOverview)
		api.GET("/:id", todoHandler.Get)
		api.PUT("/:id", todoHandler.Update)
		api.DELETE("/:id", todoHandler.Delete)
		api.PATCH("/:id/toggle", todoHandler.Toggle)
	}

	// 服务信息
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "待办管理 API 服务运行中",
			"version": "1.0.0",
			"endpoints": gin.H{
				"todos": "/api/todos",
				"stats": "/api/todos/stats/overview",
			},
		})
	})

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 未匹配路由
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "请求的接口不存在",
			"path":  c.Request.URL.Path,
		})
	})

	return &HTTPServer{
		router:   router,
		httpPort: serverCfg.HTTPPort,
		logger:   logger,
	}
}

// Start 启动服务器
func (s *HTTPServer) Start() error {
	s.server = &http.Server{
		Addr:    s.httpPort,
		Handler: s.router,
	}

	s.logger.Info("HTTP server starting",
		"port", s.httpPort,
	)

	return s.server.ListenAndServe()
}

// Shutdown 优雅关闭
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
