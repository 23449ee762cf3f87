package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nishida-sj/shift-management-system-sub000/pkg/jwt"
	"github.com/nishida-sj/shift-management-system-sub000/pkg/response"
)

// MustGetEmployeeCode 从 Gin 上下文中安全提取 employee_code。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetEmployeeCode(c *gin.Context) (string, bool) {
	v, exists := c.Get("employee_code")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetClaims 从 Gin 上下文中安全提取 Token 声明。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("token_claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok || claims == nil {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}

// IsAdmin 判断当前请求是否来自管理员
func IsAdmin(c *gin.Context) bool {
	v, exists := c.Get("role")
	if !exists {
		return false
	}
	role, ok := v.(string)
	return ok && role == "admin"
}
