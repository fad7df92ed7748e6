package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).Register(ctx, param.UserName, param.FullName, param.Email, param.Password)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func Login(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	result, err := service.NewUserService(ctx).Login(ctx, param.UserName, param.Password)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, result)
}

// Logout 双token都是短期无状态凭证 服务端无会话可清 由客户端丢弃token
func Logout(ctx context.Context, c *app.RequestContext) {
	if _, err := jwt.GetUserId(ctx, c); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

// GetCurrentUser 当前登录用户的资料
func GetCurrentUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).GetUserInfo(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, user)
}

func UpdateUser(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param UpdateUserParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewUserService(ctx).UpdateUserInfo(ctx, userId, param.FullName, param.Email); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

func ChangePassword(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param ChangePasswordParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewUserService(ctx).ChangePassword(ctx, userId, param.OldPassword, param.NewPassword); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}

// UpdateAvatar multipart表单 字段名avatar
func UpdateAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	data, contentType, err := common.ReadFormFile(c, "avatar")
	if err != nil || len(data) == 0 {
		common.SendResponse(c, errno.RequestErr.WithMessage("avatar file is required"), nil)
		return
	}
	url, err := service.NewUserService(ctx).UpdateAvatar(ctx, userId, data, contentType)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]string{"avatar_url": url})
}

// UpdateCover multipart表单 字段名cover
func UpdateCover(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	data, contentType, err := common.ReadFormFile(c, "cover")
	if err != nil || len(data) == 0 {
		common.SendResponse(c, errno.RequestErr.WithMessage("cover file is required"), nil)
		return
	}
	url, err := service.NewUserService(ctx).UpdateCover(ctx, userId, data, contentType)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, map[string]string{"cover_url": url})
}

// GetChannelProfile 频道页 允许匿名访问
func GetChannelProfile(ctx context.Context, c *app.RequestContext) {
	userName := c.Param("username")
	principalId := jwt.GetUserIdOrAnonymous(ctx, c)
	profile, err := service.NewUserService(ctx).GetChannelProfile(ctx, userName, principalId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, profile)
}

// GetWatchHistory 当前用户的观看历史
func GetWatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	videos, err := service.NewUserService(ctx).GetWatchHistory(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, videos)
}
