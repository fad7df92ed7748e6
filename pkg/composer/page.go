package composer

import (
	"VidTube.com/pkg/constants"
)

// NormalizePage 分页参数兜底 page/limit都是1起 limit有上限
func NormalizePage(pageNum, pageSize int64) (int64, int64) {
	if pageNum <= 0 {
		pageNum = constants.DefaultPageNum
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	return pageNum, pageSize
}

// TotalPages ceil(count/limit)
func TotalPages(count, pageSize int64) int64 {
	if pageSize <= 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
