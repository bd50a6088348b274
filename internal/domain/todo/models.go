package todo

import (
	"math"
	"time"
)

// Priority 待办优先级
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid 校验优先级取值
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Item 待办事项实体
type Item struct {
	ID          string     // 唯一标识（UUID）
	Title       string     // 标题，必填
	Description string     // 描述，可选
	Completed   bool       // 是否完成
	Priority    Priority   // 优先级
	DueDate     *time.Time // 截止时间（可选）
	Tags        []string   // 标签列表
	CreatedAt   time.Time  // 创建时间
	UpdatedAt   time.Time  // 最后更新时间
}

// MarkCompleted 标记为完成
func (t *Item) MarkCompleted() {
	t.Completed = true
	t.UpdatedAt = time.Now()
}

// MarkPending 标记为未完成
func (t *Item) MarkPending() {
	t.Completed = false
	t.UpdatedAt = time.Now()
}

// Toggle 切换完成状态
func (t *Item) Toggle() {
	if t.Completed {
		t.MarkPending()
	} else {
		t.MarkCompleted()
	}
}

// ChangePriority 修改优先级
func (t *Item) ChangePriority(p Priority) {
	t.Priority = p
	t.UpdatedAt = time.Now()
}

// DaysUntilDue 距离截止日的天数，向上取整
// 未设置截止时间返回 nil；已过期返回负数
// 派生字段，只在序列化时计算，不落库
func (t *Item) DaysUntilDue(now time.Time) *int {
	if t.DueDate == nil {
		return nil
	}
	diff := t.DueDate.Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	return &days
}
