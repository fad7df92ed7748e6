package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/playlist/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
)

type PlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(ctx, userId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

// GetPlaylist 播放列表详情 允许匿名访问
func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("playlist id is invalid"), nil)
		return
	}
	view, err := service.NewPlaylistService(ctx).GetPlaylistById(ctx, playlistId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, view)
}

// GetUserPlaylists 某用户的播放列表 user_id走查询参数 允许匿名访问
func GetUserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Query("user_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("user id is invalid"), nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlists)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("playlist id is invalid"), nil)
		return
	}
	var param PlaylistParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(ctx, userId, playlistId, param.Name, param.Description)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("playlist id is invalid"), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(ctx, userId, playlistId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func AddVideoToPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("playlist id is invalid"), nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("video id is invalid"), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).AddVideo(ctx, userId, playlistId, videoId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func RemoveVideoFromPlaylist(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlistId, err := utils.ConvertStringToInt64(c.Param("playlist_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("playlist id is invalid"), nil)
		return
	}
	videoId, err := utils.ConvertStringToInt64(c.Param("video_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("video id is invalid"), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(ctx, userId, playlistId, videoId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}
