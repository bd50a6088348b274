package todo

import (
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/todoapi/backend/internal/domain/todo"
	applog "github.com/todoapi/backend/internal/infrastructure/log"
	"github.com/todoapi/backend/internal/infrastructure/storage"
)

// TodoService 待办事项应用服务，编排校验、查询翻译和仓储调用
type TodoService struct {
	repo   storage.TodoRepository
	logger *slog.Logger
}

// NewTodoService 创建待办事项应用服务
func NewTodoService(repo storage.TodoRepository) *TodoService {
	return &TodoService{
		repo:   repo,
		logger: applog.NewModuleLogger("application", "todo"),
	}
}

// Pagination 分页信息块
type Pagination struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	TotalItems   int `json:"totalItems"`
	ItemsPerPage int `json:"itemsPerPage"`
}

// ListResult 列表查询结果：当前页 + 分页信息 + 统计块
// 统计块与列表共用同一份过滤条件（不含分页）
type ListResult struct {
	Items      []*todo.Item
	Pagination Pagination
	Stats      *todo.Stats
}

// Overview 全量统计概览
type Overview struct {
	todo.Stats
	CompletionRate int `json:"completionRate"`
}

// List 按条件查询待办列表
// 列表页、总数和统计是三次独立读取，不在一个事务内：
// 并发写入时 total 和当前页可能反映略有先后的两个时间点，这是已接受的取舍
func (s *TodoService) List(params ListParams) (*ListResult, error) {
	now := time.Now()
	q := params.toQuery(now)

	items, err := s.repo.Find(q)
	if err != nil {
		s.logger.Error("failed to query todo list", "error", err)
		return nil, err
	}

	total, err := s.repo.Count(q.Filter)
	if err != nil {
		s.logger.Error("failed to count todos", "error", err)
		return nil, err
	}

	stats, err := s.repo.Aggregate(q.Filter, now)
	if err != nil {
		s.logger.Error("failed to aggregate todos", "error", err)
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + q.Limit - 1) / q.Limit // 向上取整
	}

	return &ListResult{
		Items: items,
		Pagination: Pagination{
			CurrentPage:  params.page(),
			TotalPages:   totalPages,
			TotalItems:   total,
			ItemsPerPage: q.Limit,
		},
		Stats: stats,
	}, nil
}

// Get 根据 ID 获取待办
func (s *TodoService) Get(id string) (*todo.Item, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}

	item, err := s.repo.FindByID(id)
	if err != nil {
		s.logger.Error("failed to query todo", "id", id, "error", err)
		return nil, err
	}
	if item == nil {
		return nil, todo.ErrNotFound
	}

	return item, nil
}

// Create 创建待办
// ID 和时间戳在这里分配；创建后 createdAt == updatedAt
func (s *TodoService) Create(in todo.CreateInput) (*todo.Item, error) {
	now := time.Now()

	item, err := todo.ValidateCreate(in, now)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.New().String()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.repo.Insert(item); err != nil {
		s.logger.Error("failed to create todo", "error", err)
		return nil, err
	}

	return item, nil
}

// Update 部分更新待办，只覆盖提供了的字段
func (s *TodoService) Update(id string, in todo.UpdateInput) (*todo.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := todo.ApplyUpdate(item, in, time.Now()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(item); err != nil {
		s.logger.Error("failed to update todo", "id", id, "error", err)
		return nil, err
	}

	return item, nil
}

// Delete 删除待办，返回删除前的状态
func (s *TodoService) Delete(id string) (*todo.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete todo", "id", id, "error", err)
		return nil, err
	}

	return item, nil
}

// DeleteAll 删除所有待办，返回删除条数；空集合直接成功返回 0
func (s *TodoService) DeleteAll() (int64, error) {
	count, err := s.repo.DeleteAll()
	if err != nil {
		s.logger.Error("failed to delete all todos", "error", err)
		return 0, err
	}
	return count, nil
}

// Toggle 切换完成状态并刷新更新时间
// 每次调用都翻转，不是幂等操作
func (s *TodoService) Toggle(id string) (*todo.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	item.Toggle()

	if err := s.repo.Update(item); err != nil {
		s.logger.Error("failed to toggle todo", "id", id, "error", err)
		return nil, err
	}

	return item, nil
}

// Overview 全集合统计概览
// completionRate = round(completed/total*100)，空集合时为 0
func (s *TodoService) Overview() (*Overview, error) {
	stats, err := s.repo.Aggregate(todo.Filter{}, time.Now())
	if err != nil {
		s.logger.Error("failed to aggregate todo overview", "error", err)
		return nil, err
	}

	rate := 0
	if stats.Total > 0 {
		rate = int(math.Round(float64(stats.Completed) / float64(stats.Total) * 100))
	}

	return &Overview{
		Stats:          *stats,
		CompletionRate: rate,
	}, nil
}

// checkID 校验 ID 是否为合法 UUID，非法时返回 ErrInvalidID
// 在任何仓储调用之前执行
func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return todo.ErrInvalidID
	}
	return nil
}
