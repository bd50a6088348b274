//go:build integration
// +build integration

// APIClient 基于 resty 封装的 HTTP 客户端
package framework

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIClient 测试用 HTTP 客户端
type APIClient struct {
	client  *resty.Client
	baseURL string
}

// NewAPIClient 创建测试用 HTTP 客户端
func NewAPIClient(baseURL string) *APIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &APIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// --- 通用响应结构 ---

// APIResponse 通用 API 响应（与 response 包的 JSON 结构对应）
type APIResponse[T any] struct {
	Success bool     `json:"success"`
	Data    T        `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Details []string `json:"details,omitempty"`
}

// --- 各接口 Data 结构（与 handler 返回的 DTO 对应） ---

// TodoData 单条待办的响应 data
type TodoData struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Completed    bool     `json:"completed"`
	Priority     string   `json:"priority"`
	DueDate      *int64   `json:"dueDate"`
	Tags         []string `json:"tags"`
	CreatedAt    int64    `json:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt"`
	DaysUntilDue *int     `json:"daysUntilDue"`
}

// PaginationData 列表响应的分页块
type PaginationData struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// StatsData 列表响应的统计块
type StatsData struct {
	Total          int64 `json:"total"`
	Completed      int64 `json:"completed"`
	Pending        int64 `json:"pending"`
	HighPriority   int64 `json:"highPriority"`
	MediumPriority int64 `json:"mediumPriority"`
	LowPriority    int64 `json:"lowPriority"`
}

// OverviewData GET /stats/overview 响应 data
type OverviewData struct {
	StatsData
	Overdue        int64 `json:"overdue"`
	CompletionRate int   `json:"completionRate"`
}

// DeleteAllData DELETE /api/todos 响应 data
type DeleteAllData struct {
	DeletedCount int64 `json:"deletedCount"`
}

// ListResponse 列表响应（分页和统计与 data 并列）
type ListResponse struct {
	Success    bool           `json:"success"`
	Data       []TodoData     `json:"data"`
	Pagination PaginationData `json:"pagination"`
	Stats      StatsData      `json:"stats"`
}

func do[T any](r *resty.Request, result *APIResponse[T]) *resty.Request {
	return r.SetResult(result).SetError(result)
}

// --- 健康检查 ---

// HealthCheck 健康检查
func (c *APIClient) HealthCheck() error {
	resp, err := c.client.R().Get("/health")
	if err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode())
	}
	return nil
}

// --- 待办管理 ---

// CreateTodo 创建待办
func (c *APIClient) CreateTodo(payload map[string]interface{}) (*APIResponse[TodoData], int, error) {
	var result APIResponse[TodoData]
	resp, err := do(c.client.R().SetBody(payload), &result).
		Post("/api/todos")
	return &result, statusOf(resp), err
}

// GetTodo 获取单条待办
func (c *APIClient) GetTodo(id string) (*APIResponse[TodoData], int, error) {
	var result APIResponse[TodoData]
	resp, err := do(c.client.R(), &result).
		Get(fmt.Sprintf("/api/todos/%s", id))
	return &result, statusOf(resp), err
}

// ListTodos 按查询参数获取待办列表
func (c *APIClient) ListTodos(params map[string]string) (*ListResponse, int, error) {
	var result ListResponse
	resp, err := c.client.R().
		SetQueryParams(params).
		SetResult(&result).
		Get("/api/todos")
	return &result, statusOf(resp), err
}

// UpdateTodo 更新待办
func (c *APIClient) UpdateTodo(id string, payload map[string]interface{}) (*APIResponse[TodoData], int, error) {
	var result APIResponse[TodoData]
	resp, err := do(c.client.R().SetBody(payload), &result).
		Put(fmt.Sprintf("/api/todos/%s", id))
	return &result, statusOf(resp), err
}

// ToggleTodo 切换完成状态
func (c *APIClient) ToggleTodo(id string) (*APIResponse[TodoData], int, error) {
	var result APIResponse[TodoData]
	resp, err := do(c.client.R(), &result).
		Patch(fmt.Sprintf("/api/todos/%s/toggle", id))
	return &result, statusOf(resp), err
}

// DeleteTodo 删除待办
func (c *APIClient) DeleteTodo(id string) (*APIResponse[TodoData], int, error) {
	var result APIResponse[TodoData]
	resp, err := do(c.client.R(), &result).
		Delete(fmt.Sprintf("/api/todos/%s", id))
	return &result, statusOf(resp), err
}

// DeleteAllTodos 清空待办
func (c *APIClient) DeleteAllTodos() (*APIResponse[DeleteAllData], int, error) {
	var result APIResponse[DeleteAllData]
	resp, err := do(c.client.R(), &result).
		Delete("/api/todos")
	return &result, statusOf(resp), err
}

// StatsOverview 获取全量统计
func (c *APIClient) StatsOverview() (*APIResponse[OverviewData], int, error) {
	var result APIResponse[OverviewData]
	resp, err := do(c.client.R(), &result).
		Get("/api/todos/stats/overview")
	return &result, statusOf(resp), err
}

func statusOf(resp *resty.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode()
}
