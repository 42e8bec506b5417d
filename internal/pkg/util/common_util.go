package util

import (
	"net/http"
	"time"
)

// DateOnly 截断到当天零点，统一所有按日聚合的口径
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetMidnight 获取下一个零点，用于缓存过期
func GetMidnight() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
}

// DetectImageContentType 基于文件头嗅探图片类型，非图片返回空串
func DetectImageContentType(head []byte) string {
	contentType := http.DetectContentType(head)
	if len(contentType) >= 6 && contentType[:6] == "image/" {
		return contentType
	}
	return ""
}
