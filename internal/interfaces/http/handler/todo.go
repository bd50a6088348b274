package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apptodo "github.com/todoapi/backend/internal/application/todo"
	"github.com/todoapi/backend/internal/domain/todo"
	"github.com/todoapi/backend/internal/infrastructure/config"
	"github.com/todoapi/backend/internal/interfaces/http/response"
)

// TodoHandler 待办事项处理器
type TodoHandler struct {
	service *apptodo.TodoService
	cfg     *config.Config
}

// NewTodoHandler 创建待办事项处理器
func NewTodoHandler(service *apptodo.TodoService, cfg *config.Config) *TodoHandler {
	return &TodoHandler{service: service, cfg: cfg}
}

// TodoDTO 待办事项 DTO
type TodoDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"`
	DueDate     *int64   `json:"dueDate"` // Unix 毫秒时间戳，可选
	Tags        []string `json:"tags"`
	CreatedAt   int64    `json:"createdAt"` // Unix 毫秒时间戳
	UpdatedAt   int64    `json:"updatedAt"` // Unix 毫秒时间戳
	// DaysUntilDue 距离截止日的天数，序列化时按当前时钟计算，不落库
	DaysUntilDue *int `json:"daysUntilDue"`
}

// CreateTodoRequest 创建待办请求
// dueDate 兼容 Unix 毫秒时间戳和 RFC3339 字符串
type CreateTodoRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Priority    string          `json:"priority"`
	DueDate     json.RawMessage `json:"dueDate"`
	Tags        []string        `json:"tags"`
}

// UpdateTodoRequest 更新待办请求，缺省字段保持原值
// dueDate 传 null 表示清除已有截止时间
type UpdateTodoRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Completed   *bool           `json:"completed"`
	Priority    *string         `json:"priority"`
	DueDate     json.RawMessage `json:"dueDate"`
	Tags        *[]string       `json:"tags"`
}

// toDTO 将领域模型转换为 DTO
func toDTO(item *todo.Item) *TodoDTO {
	dto := &TodoDTO{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		Completed:    item.Completed,
		Priority:     string(item.Priority),
		Tags:         item.Tags,
		CreatedAt:    item.CreatedAt.UnixMilli(),
		UpdatedAt:    item.UpdatedAt.UnixMilli(),
		DaysUntilDue: item.DaysUntilDue(time.Now()),
	}
	if item.DueDate != nil {
		ts := item.DueDate.UnixMilli()
		dto.DueDate = &ts
	}
	if dto.Tags == nil {
		dto.Tags = []string{}
	}
	return dto
}

// toDTOs 批量转换
func toDTOs(items []*todo.Item) []*TodoDTO {
	dtos := make([]*TodoDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	return dtos
}

// listStatsDTO 列表内嵌统计块，不含 overdue 和 completionRate
type listStatsDTO struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

// List 获取待办列表
// @Summary 获取待办列表
// @Description 支持完成状态、优先级、全文检索、即将到期过滤，以及排序和分页
// @Tags 待办
// @Accept json
// @Produce json
// @Param page query int false "页码，默认 1"
// @Param limit query int false "每页条数，默认 10"
// @Param completed query bool false "完成状态过滤"
// @Param priority query string false "优先级过滤（low/medium/high）"
// @Param search query string false "全文检索关键词"
// @Param sortBy query string false "排序字段，默认 createdAt"
// @Param sortOrder query string false "排序方向（asc/desc），默认 desc"
// @Param dueSoon query bool false "只看 3 天内到期的未完成待办"
// @Success 200 {object} response.ListResponse
// @Router /todos [get]
func (h *TodoHandler) List(c *gin.Context) {
	// 参数解析失败时回退默认值，列表查询不因参数报错
	params := apptodo.ListParams{
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		Completed: c.Query("completed"),
		Priority:  c.Query("priority"),
		Search:    c.Query("search"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		DueSoon:   c.Query("dueSoon"),
	}

	result, err := h.service.List(params)
	if err != nil {
		h.renderError(c, err, "获取待办列表失败")
		return
	}

	stats := listStatsDTO{
		Total:          result.Stats.Total,
		Completed:      result.Stats.Completed,
		Pending:        result.Stats.Pending,
		HighPriority:   result.Stats.HighPriority,
		MediumPriority: result.Stats.MediumPriority,
		LowPriority:    result.Stats.LowPriority,
	}

	response.SuccessList(c, toDTOs(result.Items), result.Pagination, stats)
}

// Get 获取单个待办
// @Summary 获取单个待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path string true "待办ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [get]
func (h *TodoHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.renderError(c, err, "获取待办失败")
		return
	}

	response.Success(c, toDTO(item))
}

// Create 创建待办
// @Summary 创建待办
// @Tags 待办
// @Accept json
// @Produce json
// @Param body body CreateTodoRequest true "待办内容"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) Create(c *gin.Context) {
	var req CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "请求体格式错误")
		return
	}

	item, err := h.service.Create(todo.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     todo.ParseDueDate(req.DueDate),
		Tags:        req.Tags,
	})
	if err != nil {
		h.renderError(c, err, "创建待办失败")
		return
	}

	response.Created(c, toDTO(item), "待办创建成功")
}

// Update 更新待办
// @Summary 更新待办
// @Description 只更新请求中出现的字段，dueDate 传 null 清除截止时间
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path string true "待办ID"
// @Param body body UpdateTodoRequest true "更新内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) Update(c *gin.Context) {
	var req UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "请求体格式错误")
		return
	}

	item, err := h.service.Update(c.Param("id"), todo.UpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
		DueDate:     todo.ParseDueDate(req.DueDate),
		Tags:        req.Tags,
	})
	if err != nil {
		h.renderError(c, err, "更新待办失败")
		return
	}

	response.SuccessWithMessage(c, toDTO(item), "待办更新成功")
}

// Delete 删除待办
// @Summary 删除待办
// @Description 返回被删除待办的最后状态
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path string true "待办ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id} [delete]
func (h *TodoHandler) Delete(c *gin.Context) {
	item, err := h.service.Delete(c.Param("id"))
	if err != nil {
		h.renderError(c, err, "删除待办失败")
		return
	}

	response.SuccessWithMessage(c, toDTO(item), "待办删除成功")
}

// DeleteAll 删除所有待办
// @Summary 删除所有待办
// @Tags 待办
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /todos [delete]
func (h *TodoHandler) DeleteAll(c *gin.Context) {
	count, err := h.service.DeleteAll()
	if err != nil {
		h.renderError(c, err, "删除待办失败")
		return
	}

	response.SuccessWithMessage(c,
		gin.H{"deletedCount": count},
		"所有待办已删除")
}

// Toggle 切换待办完成状态
// @Summary 切换待办完成状态
// @Description 每次调用翻转 completed，非幂等
// @Tags 待办
// @Accept json
// @Produce json
// @Param id path string true "待办ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /todos/{id}/toggle [patch]
func (h *TodoHandler) Toggle(c *gin.Context) {
	item, err := h.service.Toggle(c.Param("id"))
	if err != nil {
		h.renderError(c, err, "切换待办状态失败")
		return
	}

	message := "待办已标记为未完成"
	if item.Completed {
		message = "待办已标记为完成"
	}

	response.SuccessWithMessage(c, toDTO(item), message)
}

// StatsOverview 全量统计概览
// @Summary 待办统计概览
// @Description 全集合的计数统计、逾期数和完成率
// @Tags 待办
// @Accept json
// @Produce json
// @Success 200 {object} response.Response
// @Router /todos/stats/overview [get]
func (h *TodoHandler) StatsOverview(c *gin.Context) {
	overview, err := h.service.Overview()
	if err != nil {
		h.renderError(c, err, "获取统计信息失败")
		return
	}

	response.Success(c, overview)
}

// renderError 统一错误映射：
// InvalidID/ValidationError -> 400，NotFound -> 404，其余 -> 500
// 500 的内部错误详情只在开发环境返回
func (h *TodoHandler) renderError(c *gin.Context, err error, fallback string) {
	var verr *todo.ValidationError

	switch {
	case errors.Is(err, todo.ErrInvalidID):
		response.Error(c, http.StatusBadRequest, "无效的待办ID")
	case errors.Is(err, todo.ErrNotFound):
		response.Error(c, http.StatusNotFound, "待办不存在")
	case errors.As(err, &verr):
		response.ErrorWithDetails(c, http.StatusBadRequest, "输入数据校验失败", verr.Messages())
	default:
		if h.cfg.IsDevelopment() {
			response.ErrorWithMessage(c, http.StatusInternalServerError, fallback, err.Error())
		} else {
			response.Error(c, http.StatusInternalServerError, fallback)
		}
	}
}
