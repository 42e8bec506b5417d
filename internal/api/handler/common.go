package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultPageSize = 20
const maxPageSize = 100

// getPagination 解析 limit/offset，越界时回退默认值
func getPagination(c *gin.Context) (int, int) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(defaultPageSize))
	offsetStr := c.DefaultQuery("offset", "0")

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset, err := strconv.Atoi(offsetStr)
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}

// parseIDParam 解析路径上的数字 ID
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
