package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDataDir 隔离数据目录，避免读到真实的 config.yaml
func useTempDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvDataDir, dir)
	ResetDataDir()
	t.Cleanup(ResetDataDir)
	return dir
}

func TestNewConfig_Defaults(t *testing.T) {
	useTempDataDir(t)
	t.Setenv("PORT", "")
	t.Setenv("TODO_DB_PATH", "")
	t.Setenv("ENV", "")

	cfg := NewConfig()
	assert.Equal(t, ":3000", cfg.Server.HTTPPort)
	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
}

func TestNewConfig_EnvOverride(t *testing.T) {
	useTempDataDir(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TODO_DB_PATH", "/tmp/custom.db")
	t.Setenv("ENV", "Development")

	cfg := NewConfig()
	assert.Equal(t, ":8080", cfg.Server.HTTPPort, "裸端口号应补上冒号前缀")
	assert.Equal(t, "/tmp/custom.db", cfg.Database.Path)
	assert.True(t, cfg.IsDevelopment(), "环境名大小写不敏感")
}

func TestNewConfig_YamlFile(t *testing.T) {
	dir := useTempDataDir(t)
	t.Setenv("PORT", "")
	t.Setenv("TODO_DB_PATH", "")
	t.Setenv("ENV", "")

	yaml := "server:\n  http_port: \":4000\"\nenvironment: development\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg := NewConfig()
	assert.Equal(t, ":4000", cfg.Server.HTTPPort)
	assert.True(t, cfg.IsDevelopment())
}

func TestNewConfig_EnvBeatsYaml(t *testing.T) {
	dir := useTempDataDir(t)
	t.Setenv("PORT", "5000")
	t.Setenv("TODO_DB_PATH", "")
	t.Setenv("ENV", "")

	yaml := "server:\n  http_port: \":4000\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg := NewConfig()
	assert.Equal(t, ":5000", cfg.Server.HTTPPort, "环境变量优先级高于配置文件")
}

func TestNormalizePort(t *testing.T) {
	assert.Equal(t, ":3000", normalizePort("3000"))
	assert.Equal(t, ":3000", normalizePort(":3000"))
}
