package service

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"

	"VidTube.com/cmd/relation/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
)

// RelationService 订阅关系服务
type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// SubscribeResult 订阅切换结果 state为created或removed
type SubscribeResult struct {
	State string `json:"state"`
}

// ToggleSubscription 订阅边切换 不允许订阅自己
func (service *RelationService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (*SubscribeResult, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("channel id is invalid")
	}
	if subscriberId == channelId {
		return nil, errno.RequestErr.WithMessage("You cannot subscribe to yourself")
	}
	exist, err := userdb.CheckUserExistById(ctx, channelId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("toggle subscription failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
	}

	state, _, err := db.ToggleSubscription(ctx, subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to toggle subscription: %v", err)
		return nil, errno.ServiceErr.WithMessage("toggle subscription failed")
	}

	mq.PublishSubscribeEvent(ctx, &mq.SubscribeEvent{
		SubscriberID: subscriberId,
		ChannelID:    channelId,
		State:        state,
		Timestamp:    time.Now().Unix(),
		EventID:      uuid.New().String(),
	})

	return &SubscribeResult{State: state}, nil
}

// GetChannelSubscribers 某频道的订阅者列表 返回用户投影
func (service *RelationService) GetChannelSubscribers(ctx context.Context, channelId int64) ([]*composer.UserBrief, error) {
	if channelId <= 0 {
		return nil, errno.ParamErr.WithMessage("channel id is invalid")
	}
	subscriberIds, err := db.GetSubscriberIds(ctx, channelId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get subscribers failed")
	}
	return service.briefsOf(ctx, subscriberIds)
}

// GetSubscribedChannels 用户订阅的频道列表
func (service *RelationService) GetSubscribedChannels(ctx context.Context, subscriberId int64) ([]*composer.UserBrief, error) {
	if subscriberId <= 0 {
		return nil, errno.ParamErr.WithMessage("subscriber id is invalid")
	}
	channelIds, err := db.GetSubscribedChannelIds(ctx, subscriberId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get subscribed channels failed")
	}
	return service.briefsOf(ctx, channelIds)
}

// briefsOf 按ID顺序拼装用户投影 已注销的用户跳过
func (service *RelationService) briefsOf(ctx context.Context, userIds []int64) ([]*composer.UserBrief, error) {
	users, err := userdb.GetUsersByIds(ctx, userIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get users failed")
	}
	briefs := make([]*composer.UserBrief, 0, len(userIds))
	for _, id := range userIds {
		if brief := composer.BriefOf(users[id]); brief != nil {
			briefs = append(briefs, brief)
		}
	}
	return briefs, nil
}
