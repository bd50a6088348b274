package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/todoapi/backend/internal/domain/todo"
)

// TodoRepository 待办事项仓储接口
type TodoRepository interface {
	Insert(item *todo.Item) error
	FindByID(id string) (*todo.Item, error)
	Find(q todo.ListQuery) ([]*todo.Item, error)
	Count(f todo.Filter) (int, error)
	Aggregate(f todo.Filter, now time.Time) (*todo.Stats, error)
	Update(item *todo.Item) error
	Delete(id string) error
	DeleteAll() (int64, error)
}

// todoRepository 待办事项 SQLite 仓储实现
type todoRepository struct {
	db *sql.DB
}

// NewTodoRepository 创建待办事项仓储实例
func NewTodoRepository(db *sql.DB) TodoRepository {
	// 确保表存在
	if err := initTodoTable(db); err != nil {
		// 初始化失败时记录错误但不阻止创建
		fmt.Printf("failed to init todo table: %v\n", err)
	}
	return &todoRepository{db: db}
}

// initTodoTable 初始化待办事项表和三个索引：
// 标题+描述的全文索引、完成状态+创建时间复合索引、优先级+截止时间复合索引
func initTodoTable(db *sql.DB) error {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS todos (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed INTEGER NOT NULL DEFAULT 0,
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date INTEGER,
		tags TEXT NOT NULL DEFAULT '[]',
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("failed to create todos table: %w", err)
	}

	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_todos_completed_created ON todos(completed, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_todos_priority_due ON todos(priority, due_date);
	`

	if _, err := db.Exec(createIndexSQL); err != nil {
		return fmt.Errorf("failed to create todos indexes: %w", err)
	}

	// FTS5 外部内容表，通过触发器与主表保持同步
	createFTSSQL := `
	CREATE VIRTUAL TABLE IF NOT EXISTS todos_fts USING fts5(
		title, description,
		content='todos'
	);
	CREATE TRIGGER IF NOT EXISTS todos_fts_ai AFTER INSERT ON todos BEGIN
		INSERT INTO todos_fts(rowid, title, description)
		VALUES (new.rowid, new.title, new.description);
	END;
	CREATE TRIGGER IF NOT EXISTS todos_fts_ad AFTER DELETE ON todos BEGIN
		INSERT INTO todos_fts(todos_fts, rowid, title, description)
		VALUES ('delete', old.rowid, old.title, old.description);
	END;
	CREATE TRIGGER IF NOT EXISTS todos_fts_au AFTER UPDATE ON todos BEGIN
		INSERT INTO todos_fts(todos_fts, rowid, title, description)
		VALUES ('delete', old.rowid, old.title, old.description);
		INSERT INTO todos_fts(rowid, title, description)
		VALUES (new.rowid, new.title, new.description);
	END;
	`

	if _, err := db.Exec(createFTSSQL); err != nil {
		return fmt.Errorf("failed to create todos fts index: %w", err)
	}

	return nil
}

const todoColumns = `todos.id, todos.title, todos.description, todos.completed,
		todos.priority, todos.due_date, todos.tags, todos.created_at, todos.updated_at`

// sortColumns 可排序字段映射（JSON 字段名 -> 列名）
// 不在映射中的字段按创建时间排序
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"priority":  "priority",
	"title":     "title",
	"completed": "completed",
}

// Insert 插入新待办
func (r *todoRepository) Insert(item *todo.Item) error {
	tags, err := marshalTags(item.Tags)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO todos
		(id, title, description, completed, priority, due_date, tags, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.Exec(query,
		item.ID,
		item.Title,
		item.Description,
		boolToInt(item.Completed),
		string(item.Priority),
		timeToMillis(item.DueDate),
		tags,
		item.CreatedAt.UnixMilli(),
		item.UpdatedAt.UnixMilli(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert todo: %w", err)
	}

	return nil
}

// FindByID 根据 ID 查找待办，未找到时返回 (nil, nil)
func (r *todoRepository) FindByID(id string) (*todo.Item, error) {
	query := `SELECT ` + todoColumns + ` FROM todos WHERE id = ?`

	item, err := scanItem(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query todo: %w", err)
	}

	return item, nil
}

// Find 按条件查询待办列表（过滤 + 排序 + 分页）
func (r *todoRepository) Find(q todo.ListQuery) ([]*todo.Item, error) {
	from, where, args := buildFilter(q.Filter)

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if q.SortOrder == "desc" {
		direction = "DESC"
	}

	query := fmt.Sprintf(
		`SELECT %s FROM %s %s ORDER BY todos.%s %s LIMIT ? OFFSET ?`,
		todoColumns, from, where, column, direction,
	)
	args = append(args, q.Limit, q.Skip)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query todos: %w", err)
	}
	defer rows.Close()

	items := make([]*todo.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// Count 统计匹配过滤条件的待办总数
func (r *todoRepository) Count(f todo.Filter) (int, error) {
	from, where, args := buildFilter(f)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s %s`, from, where)

	var count int
	if err := r.db.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}

	return count, nil
}

// Aggregate 对匹配过滤条件的待办做一次聚合统计
// overdue = 截止时间早于 now 且未完成；空集合时全部计数为 0
func (r *todoRepository) Aggregate(f todo.Filter, now time.Time) (*todo.Stats, error) {
	from, where, args := buildFilter(f)

	query := fmt.Sprintf(`
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN todos.completed = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN todos.priority = 'high' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN todos.priority = 'medium' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN todos.priority = 'low' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN todos.due_date IS NOT NULL
				AND todos.due_date < ? AND todos.completed = 0 THEN 1 ELSE 0 END), 0)
		FROM %s %s`, from, where)

	// SELECT 列表中的占位符先于 WHERE 中的绑定
	queryArgs := append([]any{now.UnixMilli()}, args...)

	var stats todo.Stats
	err := r.db.QueryRow(query, queryArgs...).Scan(
		&stats.Total,
		&stats.Completed,
		&stats.HighPriority,
		&stats.MediumPriority,
		&stats.LowPriority,
		&stats.Overdue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate todos: %w", err)
	}

	stats.Pending = stats.Total - stats.Completed

	return &stats, nil
}

// Update 按 ID 更新待办全部字段
func (r *todoRepository) Update(item *todo.Item) error {
	tags, err := marshalTags(item.Tags)
	if err != nil {
		return err
	}

	query := `
		UPDATE todos
		SET title = ?, description = ?, completed = ?, priority = ?,
			due_date = ?, tags = ?, updated_at = ?
		WHERE id = ?`

	_, err = r.db.Exec(query,
		item.Title,
		item.Description,
		boolToInt(item.Completed),
		string(item.Priority),
		timeToMillis(item.DueDate),
		tags,
		item.UpdatedAt.UnixMilli(),
		item.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	return nil
}

// Delete 删除待办
func (r *todoRepository) Delete(id string) error {
	query := `DELETE FROM todos WHERE id = ?`
	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}
	return nil
}

// DeleteAll 删除所有待办，返回删除条数
func (r *todoRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec(`DELETE FROM todos`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete all todos: %w", err)
	}
	return result.RowsAffected()
}

// buildFilter 将过滤条件翻译为 FROM/WHERE 片段
// Find、Count、Aggregate 共用，保证三处口径一致
func buildFilter(f todo.Filter) (from string, where string, args []any) {
	from = "todos"
	var conds []string

	if f.Search != "" {
		from = "todos JOIN todos_fts ON todos.rowid = todos_fts.rowid"
		conds = append(conds, "todos_fts MATCH ?")
		args = append(args, ftsQuery(f.Search))
	}
	if f.Completed != nil {
		conds = append(conds, "todos.completed = ?")
		args = append(args, boolToInt(*f.Completed))
	}
	if f.Priority != "" {
		conds = append(conds, "todos.priority = ?")
		args = append(args, string(f.Priority))
	}
	if f.DueAfter != nil {
		conds = append(conds, "todos.due_date IS NOT NULL AND todos.due_date >= ?")
		args = append(args, f.DueAfter.UnixMilli())
	}
	if f.DueBefore != nil {
		conds = append(conds, "todos.due_date IS NOT NULL AND todos.due_date <= ?")
		args = append(args, f.DueBefore.UnixMilli())
	}

	if len(conds) > 0 {
		where = "WHERE " + strings.Join(conds, " AND ")
	}

	return from, where, args
}

// ftsQuery 将用户输入包装为 FTS5 短语查询
// 避免用户文本被当作 MATCH 语法解析；分词和相关度交给引擎
func ftsQuery(search string) string {
	return `"` + strings.ReplaceAll(search, `"`, `""`) + `"`
}

// scanner 兼容 *sql.Row 和 *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// scanItem 从查询结果扫描一条待办
func scanItem(s scanner) (*todo.Item, error) {
	var item todo.Item
	var completed int
	var priority string
	var dueDate sql.NullInt64
	var tags string
	var createdAt, updatedAt int64

	if err := s.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&completed,
		&priority,
		&dueDate,
		&tags,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	item.Completed = completed == 1
	item.Priority = todo.Priority(priority)
	if dueDate.Valid {
		t := time.UnixMilli(dueDate.Int64)
		item.DueDate = &t
	}
	if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
		item.Tags = nil
	}
	item.CreatedAt = time.UnixMilli(createdAt)
	item.UpdatedAt = time.UnixMilli(updatedAt)

	return &item, nil
}

// marshalTags 标签序列化为 JSON 数组，nil 存为 []
func marshalTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tags: %w", err)
	}
	return string(data), nil
}

// timeToMillis 可空时间列存储，nil 存为 NULL
func timeToMillis(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UnixMilli()
}

// boolToInt SQLite 布尔列存储
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// 编译时检查接口实现
var _ TodoRepository = (*todoRepository)(nil)
