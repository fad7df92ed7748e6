package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
)

// PublishVideo multipart表单 视频字段video 封面字段thumbnail
func PublishVideo(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param PublishParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videoData, _, err := common.ReadFormFile(c, "video")
	if err != nil {
		common.SendResponse(c, errno.RequestErr.WithMessage("video file is invalid"), nil)
		return
	}
	thumbnailData, thumbnailType, err := common.ReadFormFile(c, "thumbnail")
	if err != nil {
		common.SendResponse(c, errno.RequestErr.WithMessage("thumbnail file is invalid"), nil)
		return
	}

	video, err := service.NewVideoService(ctx).PublishVideo(ctx, &service.PublishRequest{
		UserId:        userId,
		Title:         param.Title,
		Description:   param.Description,
		Tags:          param.Tags,
		Duration:      param.Duration,
		VideoData:     videoData,
		ThumbnailData: thumbnailData,
		ThumbnailType: thumbnailType,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

// GetVideo 允许匿名访问 匿名不计播放量不记历史
func GetVideo(ctx context.Context, c *app.RequestContext) {
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("video id is invalid"), nil)
		return
	}
	viewerId := jwt.GetUserIdOrAnonymous(ctx, c)
	view, err := service.NewVideoService(ctx).GetVideoById(ctx, videoId, viewerId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, view)
}

func ListVideos(ctx context.Context, c *app.RequestContext) {
	var param ListVideoParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	page, err := service.NewVideoService(ctx).GetAllVideos(ctx, &db.VideoQuery{
		Keyword:   param.Keyword,
		UserId:    param.UserId,
		SortBy:    param.SortBy,
		SortOrder: param.SortOrder,
		PageNum:   param.PageNum,
		PageSize:  param.PageSize,
	})
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, page)
}

func UpdateVideo(ctx context.Context, c *app.RequestContext) {
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
	var param UpdateVideoParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoService(ctx).UpdateVideo(ctx, userId, videoId, param.Title, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, video)
}

// UpdateThumbnail multipart表单 字段名thumbnail
func UpdateThumbnail(ctx context.Context, c *app.RequestContext) {
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
	data, contentType, err := common.ReadFormFile(c, "thumbnail")
	if err != nil || len(data) == 0 {
		common.SendResponse(c, errno.RequestErr.WithMessage("thumbnail file is required"), nil)
		return
	}
	url, err := service.NewVideoService(ctx).UpdateThumbnail(ctx, userId, videoId, data, contentType)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]string{"cover_url": url})
}

func DeleteVideo(ctx context.Context, c *app.RequestContext) {
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
	if err := service.NewVideoService(ctx).DeleteVideo(ctx, userId, videoId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func TogglePublishStatus(ctx context.Context, c *app.RequestContext) {
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
	isPublished, err := service.NewVideoService(ctx).TogglePublishStatus(ctx, userId, videoId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]bool{"is_published": isPublished})
}
