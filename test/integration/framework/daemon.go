//go:build integration
// +build integration

// TestDaemon 管理独立 todo-server 进程的启动与关闭
package framework

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// TestDaemon 测试服务进程
type TestDaemon struct {
	Name     string // 场景名称
	HTTPPort int    // HTTP 端口
	DataDir  string // 数据目录（隔离）

	cmd     *exec.Cmd
	baseURL string
}

// NewTestDaemon 创建测试服务进程
func NewTestDaemon(binaryPath, name string) (*TestDaemon, error) {
	// 分配空闲端口
	httpPort, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate HTTP port: %w", err)
	}

	// 创建隔离的数据目录
	dataDir, err := os.MkdirTemp("", fmt.Sprintf("todo-test-%s-", name))
	if err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return newDaemon(binaryPath, name, dataDir, httpPort), nil
}

// NewTestDaemonWithConfig 使用指定配置创建服务进程（用于重启场景）
func NewTestDaemonWithConfig(binaryPath, name, dataDir string, httpPort int) *TestDaemon {
	return newDaemon(binaryPath, name, dataDir, httpPort)
}

func newDaemon(binaryPath, name, dataDir string, httpPort int) *TestDaemon {
	d := &TestDaemon{
		Name:     name,
		HTTPPort: httpPort,
		DataDir:  dataDir,
		baseURL:  fmt.Sprintf("http://localhost:%d", httpPort),
	}

	d.cmd = exec.Command(binaryPath)
	d.cmd.Env = append(os.Environ(),
		fmt.Sprintf("TODO_DATA_DIR=%s", dataDir),
		fmt.Sprintf("PORT=:%d", httpPort),
		"GIN_MODE=test",
	)
	d.cmd.Stdout = os.Stdout
	d.cmd.Stderr = os.Stderr

	return d
}

// Start 启动服务进程并等待就绪
func (d *TestDaemon) Start() error {
	if err := d.cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon %s: %w", d.Name, err)
	}

	// 等待 health 端点就绪
	return d.waitForReady(30 * time.Second)
}

// Stop 停止服务进程并清理数据目录
func (d *TestDaemon) Stop() error {
	return d.StopWithCleanup(true)
}

// StopWithCleanup 停止服务进程，可选择是否清理数据目录
func (d *TestDaemon) StopWithCleanup(cleanup bool) error {
	if d.cmd.Process != nil {
		// 发送关闭信号
		_ = d.cmd.Process.Signal(os.Interrupt)

		// 等待进程退出（最多 5 秒）
		done := make(chan error, 1)
		go func() {
			done <- d.cmd.Wait()
		}()

		select {
		case <-done:
			// 正常退出
		case <-time.After(5 * time.Second):
			// 强制杀进程
			_ = d.cmd.Process.Kill()
			<-done
		}
	}

	if cleanup {
		return os.RemoveAll(d.DataDir)
	}
	return nil
}

// BaseURL 返回 HTTP 基础 URL
func (d *TestDaemon) BaseURL() string {
	return d.baseURL
}

// waitForReady 等待服务进程 health 端点就绪
func (d *TestDaemon) waitForReady(timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 2 * time.Second}

	for time.Now().Before(deadline) {
		resp, err := client.Get(d.baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(200 * time.Millisecond)
	}

	return fmt.Errorf("daemon %s failed to become ready within %v", d.Name, timeout)
}

// getFreePort 获取一个空闲的 TCP 端口
func getFreePort() (int, error) {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return 0, err
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port, nil
}
