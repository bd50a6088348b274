package todo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_toQuery(t *testing.T) {
	now := time.Now()

	t.Run("空参数使用默认值", func(t *testing.T) {
		q := ListParams{}.toQuery(now)

		assert.Equal(t, 0, q.Skip)
		assert.Equal(t, DefaultLimit, q.Limit)
		assert.Equal(t, "createdAt", q.SortBy)
		assert.Equal(t, "desc", q.SortOrder)
		assert.Nil(t, q.Completed)
		assert.Empty(t, string(q.Priority))
	})

	t.Run("分页换算", func(t *testing.T) {
		q := ListParams{Page: "3", Limit: "20"}.toQuery(now)

		assert.Equal(t, 40, q.Skip)
		assert.Equal(t, 20, q.Limit)
	})

	t.Run("非法参数回退默认值", func(t *testing.T) {
		q := ListParams{Page: "abc", Limit: "-5", Completed: "maybe"}.toQuery(now)

		assert.Equal(t, 0, q.Skip)
		assert.Equal(t, DefaultLimit, q.Limit)
		assert.Nil(t, q.Completed, "无法解析的 completed 按未提供处理")
	})

	t.Run("完成状态过滤", func(t *testing.T) {
		q := ListParams{Completed: "true"}.toQuery(now)

		require.NotNil(t, q.Completed)
		assert.True(t, *q.Completed)
	})

	t.Run("dueSoon 覆盖显式 completed", func(t *testing.T) {
		q := ListParams{DueSoon: "true", Completed: "true"}.toQuery(now)

		require.NotNil(t, q.Completed)
		assert.False(t, *q.Completed, "dueSoon 强制只看未完成")
		require.NotNil(t, q.DueAfter)
		require.NotNil(t, q.DueBefore)
		assert.Equal(t, now, *q.DueAfter)
		assert.Equal(t, now.Add(DueSoonWindow), *q.DueBefore)
	})

	t.Run("dueSoon 为 false 不影响过滤", func(t *testing.T) {
		q := ListParams{DueSoon: "false"}.toQuery(now)

		assert.Nil(t, q.Completed)
		assert.Nil(t, q.DueAfter)
	})

	t.Run("排序参数透传", func(t *testing.T) {
		q := ListParams{SortBy: "dueDate", SortOrder: "asc"}.toQuery(now)

		assert.Equal(t, "dueDate", q.SortBy)
		assert.Equal(t, "asc", q.SortOrder)
	})
}
