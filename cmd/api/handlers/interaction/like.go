package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
)

// ToggleLike 点赞切换 目标类型走路径参数 video/comment/tweet
func ToggleLike(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	targetKind := c.Param("target_kind")
	targetId, err := utils.ConvertStringToInt64(c.Param("target_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("target id is invalid"), nil)
		return
	}
	result, err := service.NewLikeActionService(ctx).Toggle(ctx, userId, targetKind, targetId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, result)
}

// GetLikeCount 某目标的点赞数 走cache-aside读路径 允许匿名访问
func GetLikeCount(ctx context.Context, c *app.RequestContext) {
	targetKind := c.Param("target_kind")
	targetId, err := utils.ConvertStringToInt64(c.Param("target_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("target id is invalid"), nil)
		return
	}
	count, err := service.NewLikeActionService(ctx).GetLikeCount(ctx, targetKind, targetId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]int64{"count": count})
}

// GetLikedVideos 当前用户点赞过的视频
func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewLikeActionService(ctx).GetLikedVideos(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, videos)
}
