package todo

import "time"

// Filter 待办查询的基础过滤条件（不含分页）
// 列表页、计数和统计聚合共用同一份过滤条件，保证口径一致
type Filter struct {
	Completed *bool      // 完成状态过滤，nil 表示不过滤
	Priority  Priority   // 优先级过滤，空串表示不过滤
	Search    string     // 全文检索关键词（标题+描述）
	DueAfter  *time.Time // 截止时间下界（含）
	DueBefore *time.Time // 截止时间上界（含）
}

// ListQuery 列表查询：过滤 + 排序 + 分页
type ListQuery struct {
	Filter
	SortBy    string // 排序字段（JSON 字段名）
	SortOrder string // asc / desc
	Skip      int
	Limit     int
}

// Stats 聚合统计结果
// 空集合时各计数为 0，而不是缺失
type Stats struct {
	Total          int `json:"total"`
	Completed      int `json:"completed"`
	Pending        int `json:"pending"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
	Overdue        int `json:"overdue"`
}
