package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"doro/backend/internal/api/middleware"
	"doro/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		response.Unauthorized(c, "인증이 필요합니다.")
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		response.Unauthorized(c, "인증이 필요합니다.")
		return 0, false
	}
	return id, true
}

// ParseIDParam 解析 URL 路径中的数字 ID 参数。
// 解析失败时写入 404 响应（不可解析的 id 等同于不存在的资源）。
func ParseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.NotFound(c, "리소스를 찾을 수 없습니다.")
		return 0, false
	}
	return uint(id), true
}

