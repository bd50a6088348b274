package wire

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"log/slog"

	applog "github.com/todoapi/backend/internal/infrastructure/log"
	"github.com/todoapi/backend/internal/interfaces"
)

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer *interfaces.HTTPServer
	db         *sql.DB
	logger     *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfaces.HTTPServer,
	db *sql.DB,
) *App {
	return &App{
		HTTPServer: httpServer,
		db:         db,
		logger:     applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	a.logger.Info("Starting todo backend application")

	go func() {
		if err := a.HTTPServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server stopped unexpectedly", "error", err)
		}
	}()

	return nil
}

// Stop 优雅关闭所有服务
// 先停 HTTP 服务器再关数据库连接
func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.HTTPServer.Shutdown(ctx); err != nil {
		a.logger.Error("Failed to shutdown HTTP server", "error", err)
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}

	return nil
}
