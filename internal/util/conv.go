package util

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// RequestIDKey gin.Context 中请求 ID 的键
const RequestIDKey = "request_id"

// ParseUintParam 解析路径参数，非法或为 0 时返回校验错误
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ValidationError("invalid %s %q", name, raw)
	}
	return uint(id), nil
}
