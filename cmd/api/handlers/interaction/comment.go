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

func CreateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("video id is invalid"), nil)
		return
	}
	var param CreateCommentParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).CreateComment(ctx, userId, videoId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

// ListComments 某视频的评论 允许匿名访问
func ListComments(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("video id is invalid"), nil)
		return
	}
	var param ListCommentParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comments, err := service.NewCommentService(ctx).GetVideoComments(ctx, videoId, param.PageNum, param.PageSize)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comments)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("comment id is invalid"), nil)
		return
	}
	var param UpdateCommentParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	comment, err := service.NewCommentService(ctx).UpdateComment(ctx, userId, commentId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	commentId, err := utils.ConvertStringToInt64(c.Param("comment_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("comment id is invalid"), nil)
		return
	}
	if err := service.NewCommentService(ctx).DeleteComment(ctx, userId, commentId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}
