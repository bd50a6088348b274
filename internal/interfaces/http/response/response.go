package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一成功响应结构
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// ErrorResponse 统一错误响应结构
// Details 携带校验错误的逐字段信息；Message 只在开发环境携带内部错误详情
type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage 带提示信息的成功响应
func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// Error 错误响应
func Error(c *gin.Context, httpCode int, errMsg string) {
	c.JSON(httpCode, ErrorResponse{
		Success: false,
		Error:   errMsg,
	})
}

// ErrorWithDetails 带逐字段详情的错误响应（校验错误）
func ErrorWithDetails(c *gin.Context, httpCode int, errMsg string, details []string) {
	c.JSON(httpCode, ErrorResponse{
		Success: false,
		Error:   errMsg,
		Details: details,
	})
}

// ErrorWithMessage 带内部详情的错误响应
// 仅开发环境使用，生产环境不暴露内部错误
func ErrorWithMessage(c *gin.Context, httpCode int, errMsg, message string) {
	c.JSON(httpCode, ErrorResponse{
		Success: false,
		Error:   errMsg,
		Message: message,
	})
}

// ListResponse 列表响应：当前页数据 + 分页信息 + 统计块
type ListResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Pagination interface{} `json:"pagination"`
	Stats      interface{} `json:"stats"`
}

// SuccessList 列表成功响应
func SuccessList(c *gin.Context, data, pagination, stats interface{}) {
	c.JSON(http.StatusOK, ListResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
		Stats:      stats,
	})
}
