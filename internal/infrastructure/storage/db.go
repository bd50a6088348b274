package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/todoapi/backend/internal/infrastructure/config"
	_ "modernc.org/sqlite"
)

// GetDBPath 获取数据库文件路径
// 配置中未指定时使用数据目录下的 todo.db
func GetDBPath(cfg *config.DatabaseConfig) string {
	if cfg != nil && cfg.Path != "" {
		return cfg.Path
	}
	return filepath.Join(config.GetDataDir(), "todo.db")
}

// OpenDB 打开数据库连接
func OpenDB(path string) (*sql.DB, error) {
	// 确保目录存在
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// 测试连接
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// ProvideDB 提供数据库连接（wire provider）
func ProvideDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	return OpenDB(GetDBPath(cfg))
}
