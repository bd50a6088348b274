package todo

import (
	"strconv"
	"time"

	"github.com/todoapi/backend/internal/domain/todo"
)

// 查询参数默认值
const (
	DefaultPage  = 1
	DefaultLimit = 10

	// DueSoonWindow 「即将到期」的时间窗口
	DueSoonWindow = 3 * 24 * time.Hour
)

// ListParams 列表接口的原始查询参数
// 全部为字符串，解析失败时回退默认值，列表查询不会因参数格式报错
type ListParams struct {
	Page      string
	Limit     string
	Completed string
	Priority  string
	Search    string
	SortBy    string
	SortOrder string
	DueSoon   string
}

// toQuery 将原始参数翻译为仓储查询
// dueSoon=true 优先级最高：强制 completed=false，
// 并把截止时间限定在 [now, now+3天] 闭区间，覆盖显式的 completed 参数
func (p ListParams) toQuery(now time.Time) todo.ListQuery {
	q := todo.ListQuery{
		SortBy:    "createdAt",
		SortOrder: "desc",
		Limit:     DefaultLimit,
	}

	page := DefaultPage
	if v, err := strconv.Atoi(p.Page); err == nil && v >= 1 {
		page = v
	}
	if v, err := strconv.Atoi(p.Limit); err == nil && v >= 1 {
		q.Limit = v
	}
	q.Skip = (page - 1) * q.Limit

	if v, err := strconv.ParseBool(p.Completed); err == nil {
		q.Completed = &v
	}

	// 优先级原样下推，非法取值自然匹配不到任何记录
	q.Priority = todo.Priority(p.Priority)
	q.Search = p.Search

	if p.SortBy != "" {
		q.SortBy = p.SortBy
	}
	if p.SortOrder != "" {
		q.SortOrder = p.SortOrder
	}

	if dueSoon, err := strconv.ParseBool(p.DueSoon); err == nil && dueSoon {
		notCompleted := false
		q.Completed = &notCompleted
		after := now
		before := now.Add(DueSoonWindow)
		q.DueAfter = &after
		q.DueBefore = &before
	}

	return q
}

// page 解析后的页码（用于分页响应块）
func (p ListParams) page() int {
	if v, err := strconv.Atoi(p.Page); err == nil && v >= 1 {
		return v
	}
	return DefaultPage
}
