package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/dashboard/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
)

// GetChannelStats 当前用户的频道统计
func GetChannelStats(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	stats, err := service.NewDashboardService(ctx).GetChannelStats(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, stats)
}

// GetChannelVideos 当前用户的全部视频 带点赞数
func GetChannelVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewDashboardService(ctx).GetChannelVideos(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, videos)
}
