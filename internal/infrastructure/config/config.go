package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// 运行环境
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config 应用配置
type Config struct {
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Environment string         `yaml:"environment"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	HTTPPort string `yaml:"http_port"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	// Path SQLite 数据库文件路径，空表示使用默认数据目录
	Path string `yaml:"path"`
}

// NewConfig 创建配置
// 默认值 < 可选的 config.yaml < 环境变量，后者覆盖前者
func NewConfig() *Config {
	cfg := &Config{
		Server: ServerConfig{
			HTTPPort: ":3000",
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Environment: EnvProduction,
	}

	// 数据目录下的 config.yaml 可覆盖默认值，不存在时忽略
	loadConfigFile(cfg, filepath.Join(GetDataDir(), "config.yaml"))

	// 环境变量优先级最高
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.HTTPPort = normalizePort(port)
	}
	if path := os.Getenv("TODO_DB_PATH"); path != "" {
		cfg.Database.Path = path
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Environment = strings.ToLower(env)
	}

	return cfg
}

// loadConfigFile 加载 YAML 配置文件，文件不存在或格式错误时保留已有值
func loadConfigFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	_ = yaml.Unmarshal(data, cfg)
}

// normalizePort 统一端口写法，允许 "3000" 和 ":3000" 两种
func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}

// IsDevelopment 是否为开发环境
// 开发环境下 500 响应会带上内部错误详情
func (c *Config) IsDevelopment() bool {
	return strings.ToLower(c.Environment) == EnvDevelopment
}

// NewServerConfig 创建服务器配置
func NewServerConfig(cfg *Config) *ServerConfig {
	return &cfg.Server
}

// NewDatabaseConfig 创建数据库配置
func NewDatabaseConfig(cfg *Config) *DatabaseConfig {
	return &cfg.Database
}
