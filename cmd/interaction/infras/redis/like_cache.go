package redis

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

const (
	likeCountTTL = 5 * time.Minute

	rateLimitWindow = time.Minute
)

func likeCountKey(targetKind string, targetId int64) string {
	return fmt.Sprintf("like_count:%s:%d", targetKind, targetId)
}

// GetLikeCountCache 读点赞计数缓存 未命中返回(-1, nil)
func GetLikeCountCache(ctx context.Context, targetKind string, targetId int64) (int64, error) {
	count, err := rdb.Get(ctx, likeCountKey(targetKind, targetId)).Int64()
	if err == redisv9.Nil {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return count, nil
}

func SetLikeCountCache(ctx context.Context, targetKind string, targetId, count int64) error {
	return rdb.Set(ctx, likeCountKey(targetKind, targetId), count, likeCountTTL).Err()
}

// InvalidateLikeCount 切换点赞后让计数缓存失效 下次读时回源重建
func InvalidateLikeCount(ctx context.Context, targetKind string, targetId int64) error {
	return rdb.Del(ctx, likeCountKey(targetKind, targetId)).Err()
}

// IncrCommentRate 评论限频 返回当前窗口内的评论次数
func IncrCommentRate(ctx context.Context, userId int64) (int64, error) {
	key := fmt.Sprintf("comment_rate_limit:%d", userId)
	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		rdb.Expire(ctx, key, rateLimitWindow)
	}
	return count, nil
}
