package redis

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	redisv9 "github.com/redis/go-redis/v9"

	"VidTube.com/config"
)

var rdb *redisv9.Client

// Init 初始化Redis客户端 点赞计数缓存和评论限频都走这里
func Init() {
	rdb = redisv9.NewClient(&redisv9.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("Failed to ping redis: %v", err)
	}
}
