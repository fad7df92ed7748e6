package utils

import (
	"strconv"
	"time"

	"VidTube.com/pkg/constants"
)

// Transfer JWT载荷中的用户ID可能是int64/float64/string 统一转成int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

func ConvertStringToInt64(v string) (int64, error) {
	res, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return -1, err
	}
	return res, nil
}

func NowString() string {
	return time.Now().Format(constants.DataFormate)
}
