package todo

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"
)

// 字段长度上限
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
	MaxTagLen         = 20
)

// OptionalDueDate 截止时间的三态输入
// 区分「未提供」「显式 null」「具体值」，更新时 null 用于清除已有截止时间
type OptionalDueDate struct {
	Set     bool       // 请求中是否出现该字段
	Null    bool       // 显式传了 null
	Value   *time.Time // 解析成功的时间
	Invalid bool       // 出现但无法解析
}

// ParseDueDate 解析请求中的 dueDate 字段
// 兼容 Unix 毫秒时间戳和 RFC3339 字符串两种写法
func ParseDueDate(raw json.RawMessage) OptionalDueDate {
	if raw == nil {
		return OptionalDueDate{}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return OptionalDueDate{Set: true, Null: true}
	}

	var millis int64
	if err := json.Unmarshal(raw, &millis); err == nil {
		t := time.UnixMilli(millis)
		return OptionalDueDate{Set: true, Value: &t}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return OptionalDueDate{Set: true, Value: &t}
		}
	}

	return OptionalDueDate{Set: true, Invalid: true}
}

// CreateInput 创建待办的输入
type CreateInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     OptionalDueDate
	Tags        []string
}

// UpdateInput 更新待办的输入，nil 表示字段未提供、保持原值
type UpdateInput struct {
	Title       *string
	Description *string
	Completed   *bool
	Priority    *string
	DueDate     OptionalDueDate
	Tags        *[]string
}

// ValidateCreate 校验创建输入并构造实体
// 所有违规字段一次性收集返回，不在第一个错误处中断
// ID 和时间戳由上层分配
func ValidateCreate(in CreateInput, now time.Time) (*Item, error) {
	verr := &ValidationError{}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		verr.add("title", "title 不能为空")
	} else if utf8.RuneCountInString(title) > MaxTitleLen {
		verr.add("title", "title 不能超过 100 个字符")
	}

	description := strings.TrimSpace(in.Description)
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		verr.add("description", "description 不能超过 500 个字符")
	}

	priority := PriorityMedium
	if in.Priority != "" {
		priority = Priority(in.Priority)
		if !priority.IsValid() {
			verr.add("priority", "priority 必须是 low、medium 或 high")
		}
	}

	dueDate := validateDueDate(in.DueDate, now, verr)

	tags := validateTags(in.Tags, verr)

	if err := verr.orNil(); err != nil {
		return nil, err
	}

	return &Item{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		Tags:        tags,
	}, nil
}

// ApplyUpdate 校验更新输入并应用到实体
// 只处理提供了的字段，未提供的保持原值；校验失败时实体不被修改
func ApplyUpdate(item *Item, in UpdateInput, now time.Time) error {
	verr := &ValidationError{}

	var title string
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		if title == "" {
			verr.add("title", "title 不能为空")
		} else if utf8.RuneCountInString(title) > MaxTitleLen {
			verr.add("title", "title 不能超过 100 个字符")
		}
	}

	var description string
	if in.Description != nil {
		description = strings.TrimSpace(*in.Description)
		if utf8.RuneCountInString(description) > MaxDescriptionLen {
			verr.add("description", "description 不能超过 500 个字符")
		}
	}

	if in.Priority != nil && !Priority(*in.Priority).IsValid() {
		verr.add("priority", "priority 必须是 low、medium 或 high")
	}

	dueDate := validateDueDate(in.DueDate, now, verr)

	var tags []string
	if in.Tags != nil {
		tags = validateTags(*in.Tags, verr)
	}

	if err := verr.orNil(); err != nil {
		return err
	}

	if in.Title != nil {
		item.Title = title
	}
	if in.Description != nil {
		item.Description = description
	}
	if in.Completed != nil {
		item.Completed = *in.Completed
	}
	if in.Priority != nil {
		item.Priority = Priority(*in.Priority)
	}
	if in.DueDate.Set {
		// null 清除截止时间，具体值覆盖
		item.DueDate = dueDate
	}
	if in.Tags != nil {
		item.Tags = tags
	}
	item.UpdatedAt = now

	return nil
}

// validateDueDate 校验截止时间：必须能解析，且严格晚于当前时间
// 只在校验时刻检查，之后不再复查
func validateDueDate(in OptionalDueDate, now time.Time, verr *ValidationError) *time.Time {
	if !in.Set || in.Null {
		return nil
	}
	if in.Invalid {
		verr.add("dueDate", "dueDate 不是合法的时间格式")
		return nil
	}
	if !in.Value.After(now) {
		verr.add("dueDate", "dueDate 必须晚于当前时间")
		return nil
	}
	return in.Value
}

// validateTags 逐个裁剪标签并校验长度
// 多个标签超长只报一条 tags 错误
func validateTags(tags []string, verr *ValidationError) []string {
	trimmed := make([]string, 0, len(tags))
	reported := false
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if utf8.RuneCountInString(tag) > MaxTagLen {
			if !reported {
				verr.add("tags", "tags 中的标签不能超过 20 个字符")
				reported = true
			}
			continue
		}
		trimmed = append(trimmed, tag)
	}
	return trimmed
}
