package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
)

// ToggleSubscription 订阅切换 频道ID走路径参数
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("channel id is invalid"), nil)
		return
	}
	result, err := service.NewRelationService(ctx).ToggleSubscription(ctx, userId, channelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, result)
}

// GetChannelSubscribers 某频道的订阅者 允许匿名访问
func GetChannelSubscribers(ctx context.Context, c *app.RequestContext) {
	channelId, err := utils.ConvertStringToInt64(c.Param("channel_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("channel id is invalid"), nil)
		return
	}
	subscribers, err := service.NewRelationService(ctx).GetChannelSubscribers(ctx, channelId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, subscribers)
}

// GetSubscribedChannels 当前用户订阅的频道
func GetSubscribedChannels(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	channels, err := service.NewRelationService(ctx).GetSubscribedChannels(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, channels)
}
