package todo

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound 待办不存在（ID 格式合法但无对应记录）
	ErrNotFound = errors.New("todo not found")

	// ErrInvalidID ID 格式非法
	ErrInvalidID = errors.New("invalid todo id")
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string // JSON 字段名
	Message string // 面向用户的错误信息
}

// ValidationError 校验错误，收集所有违规字段后一次性返回
type ValidationError struct {
	Fields []FieldError
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Messages 返回所有字段错误信息，用于响应的 details
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return msgs
}

// add 追加一个字段错误
func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// orNil 没有任何违规时返回 nil
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
