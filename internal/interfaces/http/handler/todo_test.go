package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apptodo "github.com/todoapi/backend/internal/application/todo"
	"github.com/todoapi/backend/internal/infrastructure/config"
	"github.com/todoapi/backend/internal/infrastructure/storage"
	_ "modernc.org/sqlite"
)

// setupRouter 基于临时数据库构建完整路由
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tmpDir, err := os.MkdirTemp("", "todo_handler_test_*")
	require.NoError(t, err)

	db, err := sql.Open("sqlite", filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})

	service := apptodo.NewTodoService(storage.NewTodoRepository(db))
	h := NewTodoHandler(service, &config.Config{Environment: config.EnvProduction})

	router := gin.New()
	api := router.Group("/api/todos")
	{
		api.GET("", h.List)
		api.POST("", h.Create)
		api.DELETE("", h.DeleteAll)
		api.GET("/stats/overview", h.StatsOverview)
		api.GET("/:id", h.Get)
		api.PUT("/:id", h.Update)
		api.DELETE("/:id", h.Delete)
		api.PATCH("/:id/toggle", h.Toggle)
	}

	return router
}

// doRequest 发送请求并解析 JSON 响应
func doRequest(t *testing.T, router *gin.Engine, method, path string, payload interface{}) (int, map[string]interface{}) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded), "响应应该是有效的 JSON")

	return w.Code, decoded
}

// createTodo 创建一条待办并返回其 ID
func createTodo(t *testing.T, router *gin.Engine, payload map[string]interface{}) string {
	t.Helper()

	code, body := doRequest(t, router, http.MethodPost, "/api/todos", payload)
	require.Equal(t, http.StatusCreated, code)

	data := body["data"].(map[string]interface{})
	return data["id"].(string)
}

func TestTodoHandler_Create(t *testing.T) {
	router := setupRouter(t)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
		validateFunc   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "创建成功",
			payload:        map[string]interface{}{"title": "买牛奶", "priority": "high", "tags": []string{"生活"}},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
				data := body["data"].(map[string]interface{})
				assert.Equal(t, "买牛奶", data["title"])
				assert.Equal(t, "high", data["priority"])
				assert.Equal(t, false, data["completed"])
				assert.Equal(t, data["createdAt"], data["updatedAt"], "刚创建时两个时间戳相等")
				assert.Nil(t, data["daysUntilDue"], "无截止时间时派生字段为 null")
			},
		},
		{
			name:           "空标题",
			payload:        map[string]interface{}{"title": "   "},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
				details := body["details"].([]interface{})
				assert.Contains(t, details[0].(string), "title", "错误详情应指明 title 字段")
			},
		},
		{
			name:           "非法优先级",
			payload:        map[string]interface{}{"title": "买牛奶", "priority": "urgent"},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].([]interface{})
				assert.Contains(t, details[0].(string), "priority")
			},
		},
		{
			name: "过去的截止时间",
			payload: map[string]interface{}{
				"title":   "买牛奶",
				"dueDate": time.Now().Add(-time.Hour).UnixMilli(),
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].([]interface{})
				assert.Contains(t, details[0].(string), "dueDate")
			},
		},
		{
			name: "多个违规字段同时报告",
			payload: map[string]interface{}{
				"title":    "",
				"priority": "urgent",
			},
			expectedStatus: http.StatusBadRequest,
			validateFunc: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].([]interface{})
				assert.Len(t, details, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := doRequest(t, router, http.MethodPost, "/api/todos", tt.payload)
			assert.Equal(t, tt.expectedStatus, code, "HTTP 状态码应该正确")

			if tt.validateFunc != nil {
				tt.validateFunc(t, body)
			}
		})
	}
}

func TestTodoHandler_Get(t *testing.T) {
	router := setupRouter(t)
	id := createTodo(t, router, map[string]interface{}{"title": "买牛奶"})

	t.Run("获取成功", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodGet, "/api/todos/"+id, nil)
		assert.Equal(t, http.StatusOK, code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "买牛奶", data["title"])
	})

	t.Run("非法 ID 返回 400", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodGet, "/api/todos/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
	})

	t.Run("不存在返回 404", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodGet, "/api/todos/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, code)
		assert.Equal(t, false, body["success"])
	})
}

func TestTodoHandler_List(t *testing.T) {
	router := setupRouter(t)

	for i := 0; i < 12; i++ {
		createTodo(t, router, map[string]interface{}{"title": "待办"})
	}

	t.Run("分页与统计块", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodGet, "/api/todos?page=2&limit=10", nil)
		require.Equal(t, http.StatusOK, code)

		items := body["data"].([]interface{})
		assert.Len(t, items, 2)

		pagination := body["pagination"].(map[string]interface{})
		assert.Equal(t, float64(2), pagination["currentPage"])
		assert.Equal(t, float64(2), pagination["totalPages"])
		assert.Equal(t, float64(12), pagination["totalItems"])
		assert.Equal(t, float64(10), pagination["itemsPerPage"])

		stats := body["stats"].(map[string]interface{})
		assert.Equal(t, float64(12), stats["total"])
		assert.NotContains(t, stats, "overdue", "列表统计块不含 overdue")
		assert.NotContains(t, stats, "completionRate")
	})

	t.Run("非法参数不报错", func(t *testing.T) {
		code, _ := doRequest(t, router, http.MethodGet, "/api/todos?page=abc&limit=xyz&completed=banana", nil)
		assert.Equal(t, http.StatusOK, code, "非法参数回退默认值")
	})
}

func TestTodoHandler_Update(t *testing.T) {
	router := setupRouter(t)
	id := createTodo(t, router, map[string]interface{}{
		"title":    "原始标题",
		"priority": "high",
		"tags":     []string{"工作"},
	})

	t.Run("部分更新", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodPut, "/api/todos/"+id,
			map[string]interface{}{"completed": true})
		require.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, true, data["completed"])
		assert.Equal(t, "原始标题", data["title"], "未提供的字段保持原值")
		assert.Equal(t, "high", data["priority"])
	})

	t.Run("null 清除截止时间", func(t *testing.T) {
		// 先设置一个截止时间
		code, _ := doRequest(t, router, http.MethodPut, "/api/todos/"+id,
			map[string]interface{}{"dueDate": time.Now().Add(24 * time.Hour).UnixMilli()})
		require.Equal(t, http.StatusOK, code)

		code, body := doRequest(t, router, http.MethodPut, "/api/todos/"+id,
			map[string]interface{}{"dueDate": nil})
		require.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]interface{})
		assert.Nil(t, data["dueDate"])
	})

	t.Run("空标题校验失败", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodPut, "/api/todos/"+id,
			map[string]interface{}{"title": ""})
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, false, body["success"])
	})
}

func TestTodoHandler_Toggle(t *testing.T) {
	router := setupRouter(t)
	id := createTodo(t, router, map[string]interface{}{"title": "买牛奶"})

	code, body := doRequest(t, router, http.MethodPatch, "/api/todos/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["completed"])

	code, body = doRequest(t, router, http.MethodPatch, "/api/todos/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)
	data = body["data"].(map[string]interface{})
	assert.Equal(t, false, data["completed"], "再次切换回到未完成")
}

func TestTodoHandler_Delete(t *testing.T) {
	router := setupRouter(t)
	id := createTodo(t, router, map[string]interface{}{"title": "买牛奶"})

	t.Run("删除返回删除前的状态", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodDelete, "/api/todos/"+id, nil)
		require.Equal(t, http.StatusOK, code)
		data := body["data"].(map[string]interface{})
		assert.Equal(t, "买牛奶", data["title"])
	})

	t.Run("重复删除返回 404", func(t *testing.T) {
		code, _ := doRequest(t, router, http.MethodDelete, "/api/todos/"+id, nil)
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("非法 ID 返回 400", func(t *testing.T) {
		code, _ := doRequest(t, router, http.MethodDelete, "/api/todos/12345", nil)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestTodoHandler_DeleteAll(t *testing.T) {
	router := setupRouter(t)

	for i := 0; i < 5; i++ {
		createTodo(t, router, map[string]interface{}{"title": "待办"})
	}

	code, body := doRequest(t, router, http.MethodDelete, "/api/todos", nil)
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["deletedCount"])

	code, body = doRequest(t, router, http.MethodGet, "/api/todos", nil)
	require.Equal(t, http.StatusOK, code)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(0), pagination["totalItems"])
	assert.Equal(t, float64(0), pagination["totalPages"])
}

func TestTodoHandler_StatsOverview(t *testing.T) {
	router := setupRouter(t)

	t.Run("空集合", func(t *testing.T) {
		code, body := doRequest(t, router, http.MethodGet, "/api/todos/stats/overview", nil)
		require.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(0), data["total"])
		assert.Equal(t, float64(0), data["completionRate"], "空集合完成率为 0")
	})

	t.Run("有数据", func(t *testing.T) {
		id := createTodo(t, router, map[string]interface{}{"title": "待办1", "priority": "high"})
		createTodo(t, router, map[string]interface{}{"title": "待办2"})

		code, _ := doRequest(t, router, http.MethodPatch, "/api/todos/"+id+"/toggle", nil)
		require.Equal(t, http.StatusOK, code)

		code, body := doRequest(t, router, http.MethodGet, "/api/todos/stats/overview", nil)
		require.Equal(t, http.StatusOK, code)

		data := body["data"].(map[string]interface{})
		assert.Equal(t, float64(2), data["total"])
		assert.Equal(t, float64(1), data["completed"])
		assert.Equal(t, float64(1), data["pending"])
		assert.Equal(t, float64(1), data["highPriority"])
		assert.Equal(t, float64(50), data["completionRate"])
		assert.Contains(t, data, "overdue")
	})
}

func TestTodoHandler_DueSoonFlow(t *testing.T) {
	router := setupRouter(t)

	id := createTodo(t, router, map[string]interface{}{
		"title":    "A",
		"priority": "high",
		"dueDate":  time.Now().Add(24 * time.Hour).UnixMilli(),
	})
	createTodo(t, router, map[string]interface{}{"title": "B"})

	code, body := doRequest(t, router, http.MethodGet, "/api/todos?dueSoon=true", nil)
	require.Equal(t, http.StatusOK, code)
	items := body["data"].([]interface{})
	require.Len(t, items, 1)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "A", first["title"])
	assert.Equal(t, float64(1), first["daysUntilDue"], "派生字段按当前时钟计算")

	// 标记完成后不再出现在 dueSoon 里
	code, _ = doRequest(t, router, http.MethodPatch, "/api/todos/"+id+"/toggle", nil)
	require.Equal(t, http.StatusOK, code)

	code, body = doRequest(t, router, http.MethodGet, "/api/todos?dueSoon=true", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, body["data"], "已完成的待办不属于即将到期")
}
