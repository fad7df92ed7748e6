package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
)

// LikeActionService 点赞服务 承载三类目标上的边切换
type LikeActionService struct {
	ctx context.Context
}

func NewLikeActionService(ctx context.Context) *LikeActionService {
	return &LikeActionService{ctx: ctx}
}

// ToggleResult 切换结果 state为created或removed
type ToggleResult struct {
	State string      `json:"state"`
	Edge  *model.Like `json:"edge,omitempty"`
}

var likeTargetKinds = map[string]bool{
	constants.LikeTargetVideo:   true,
	constants.LikeTargetComment: true,
	constants.LikeTargetTweet:   true,
}

// Toggle 点赞边切换 建边/删边由dal的单语句原子写保证
func (service *LikeActionService) Toggle(ctx context.Context, userId int64, targetKind string, targetId int64) (*ToggleResult, error) {
	if !likeTargetKinds[targetKind] {
		return nil, errno.ParamErr.WithMessage("invalid like target kind: " + targetKind)
	}
	if targetId <= 0 {
		return nil, errno.ParamErr.WithMessage(targetKind + " id is invalid")
	}

	state, edge, err := db.ToggleLike(ctx, userId, targetKind, targetId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to toggle like: %v", err)
		return nil, errno.ServiceErr.WithMessage("toggle like failed")
	}

	// 计数缓存失效 下次读取时回源
	if err := redis.InvalidateLikeCount(ctx, targetKind, targetId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to invalidate like count cache: %v", err)
	}

	mq.PublishLikeEvent(ctx, &mq.LikeEvent{
		UserID:     userId,
		TargetKind: targetKind,
		TargetID:   targetId,
		State:      state,
		Timestamp:  time.Now().Unix(),
		EventID:    uuid.New().String(),
	})

	return &ToggleResult{State: state, Edge: edge}, nil
}

// GetLikedVideos 用户点赞过的视频 按点赞先后排序 已删除的视频被过滤掉
func (service *LikeActionService) GetLikedVideos(ctx context.Context, userId int64) ([]*composer.VideoView, error) {
	videoIds, err := db.GetLikedVideoIds(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get liked videos failed")
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get liked videos failed")
	}
	ordered := composer.OrderByIds(videos, videoIds)
	users, err := userdb.GetUsersByIds(ctx, composer.VideoOwnerIds(ordered))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get liked videos failed")
	}
	return composer.EnrichVideos(ordered, users), nil
}

// GetLikeCount 点赞数 cache-aside
func (service *LikeActionService) GetLikeCount(ctx context.Context, targetKind string, targetId int64) (int64, error) {
	if !likeTargetKinds[targetKind] {
		return 0, errno.ParamErr.WithMessage("invalid like target kind: " + targetKind)
	}
	if targetId <= 0 {
		return 0, errno.ParamErr.WithMessage(targetKind + " id is invalid")
	}

	count, err := redis.GetLikeCountCache(ctx, targetKind, targetId)
	if err == nil && count >= 0 {
		return count, nil
	}
	if err != nil {
		hlog.CtxWarnf(ctx, "Failed to read like count cache: %v", err)
	}

	count, err = db.GetLikeCount(ctx, targetKind, targetId)
	if err != nil {
		return 0, err
	}
	if err := redis.SetLikeCountCache(ctx, targetKind, targetId, count); err != nil {
		hlog.CtxWarnf(ctx, "Failed to set like count cache: %v", err)
	}
	return count, nil
}
