package service

import (
	"context"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
)

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

// LoginResult 登录返回双token 前端把access放Authorization 把refresh放Refresh-Token
type LoginResult struct {
	User         *model.User `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// ChannelProfile 频道页视图 基础资料加统计与订阅关系
type ChannelProfile struct {
	*composer.UserBrief
	CoverUrl        string `json:"cover_url"`
	SubscriberCount int64  `json:"subscriber_count"`
	SubscribedTo    int64  `json:"subscribed_to_count"`
	VideoCount      int64  `json:"video_count"`
	IsSubscribed    bool   `json:"is_subscribed"`
}

func (service *UserService) Register(ctx context.Context, userName, fullName, email, password string) (*model.User, error) {
	userName = strings.TrimSpace(userName)
	if userName == "" || strings.TrimSpace(password) == "" {
		return nil, errno.RequestErr.WithMessage("username and password are required")
	}

	hashed, err := utils.Crypt(password)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("register failed")
	}
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  userName,
		FullName:  fullName,
		Email:     email,
		Password:  hashed,
		CreatedAt: utils.NowString(),
		UpdatedAt: utils.NowString(),
	}
	if err := db.CreateUser(ctx, user); err != nil {
		if pkgerrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.UserAlreadyExist
		}
		hlog.CtxErrorf(ctx, "Failed to create user: %v", err)
		return nil, errno.ServiceErr.WithMessage("register failed")
	}
	user.Password = ""
	return user, nil
}

func (service *UserService) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	user, err := db.GetUserByUserName(ctx, userName)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.AuthorizeFailErr.WithMessage("Invalid username or password")
		}
		return nil, errno.ServiceErr.WithMessage("login failed")
	}
	if !utils.VerifyPassword(password, user.Password) {
		return nil, errno.AuthorizeFailErr.WithMessage("Invalid username or password")
	}

	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.UserId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to generate tokens: %v", err)
		return nil, errno.ServiceErr.WithMessage("login failed")
	}
	user.Password = ""
	return &LoginResult{User: user, AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (service *UserService) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("User does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get user failed")
	}
	user.Password = ""
	return user, nil
}

func (service *UserService) UpdateUserInfo(ctx context.Context, userId int64, fullName, email string) error {
	if strings.TrimSpace(fullName) == "" && strings.TrimSpace(email) == "" {
		return errno.RequestErr.WithMessage("nothing to update")
	}
	if err := db.UpdateUserInfo(ctx, userId, fullName, email); err != nil {
		return errno.ServiceErr.WithMessage("update user failed")
	}
	return nil
}

func (service *UserService) ChangePassword(ctx context.Context, userId int64, oldPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return errno.RequestErr.WithMessage("new password is required")
	}
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		return errno.ServiceErr.WithMessage("change password failed")
	}
	if !utils.VerifyPassword(oldPassword, user.Password) {
		return errno.AuthorizeFailErr.WithMessage("Old password is incorrect")
	}
	hashed, err := utils.Crypt(newPassword)
	if err != nil {
		return errno.ServiceErr.WithMessage("change password failed")
	}
	if err := db.UpdateUserPassword(ctx, userId, hashed); err != nil {
		return errno.ServiceErr.WithMessage("change password failed")
	}
	return nil
}

// UpdateAvatar 上传新头像后删除旧的对象 失败只记日志
func (service *UserService) UpdateAvatar(ctx context.Context, userId int64, data []byte, contentType string) (string, error) {
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		return "", errno.ServiceErr.WithMessage("update avatar failed")
	}
	url, err := oss.UploadImage(ctx, data, "avatar/"+uuid.New().String(), contentType)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload avatar: %v", err)
		return "", errno.ServiceErr.WithMessage("update avatar failed")
	}
	if err := db.UpdateUserAvatar(ctx, userId, url); err != nil {
		return "", errno.ServiceErr.WithMessage("update avatar failed")
	}
	oss.RemoveByUrl(ctx, user.AvatarUrl)
	return url, nil
}

func (service *UserService) UpdateCover(ctx context.Context, userId int64, data []byte, contentType string) (string, error) {
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		return "", errno.ServiceErr.WithMessage("update cover failed")
	}
	url, err := oss.UploadImage(ctx, data, "cover/"+uuid.New().String(), contentType)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload cover: %v", err)
		return "", errno.ServiceErr.WithMessage("update cover failed")
	}
	if err := db.UpdateUserCover(ctx, userId, url); err != nil {
		return "", errno.ServiceErr.WithMessage("update cover failed")
	}
	oss.RemoveByUrl(ctx, user.CoverUrl)
	return url, nil
}

// GetChannelProfile 频道页 principalId为0表示匿名访问 isSubscribed恒为false
func (service *UserService) GetChannelProfile(ctx context.Context, userName string, principalId int64) (*ChannelProfile, error) {
	user, err := db.GetUserByUserName(ctx, userName)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Channel does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get channel failed")
	}

	subscriberCount, err := relationdb.GetSubscriberCount(ctx, user.UserId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel failed")
	}
	subscribedTo, err := relationdb.GetSubscribedToCount(ctx, user.UserId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel failed")
	}
	videoCount, err := videodb.GetUserVideoCount(ctx, user.UserId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel failed")
	}

	isSubscribed := false
	if principalId > 0 {
		isSubscribed, err = relationdb.IsSubscribed(ctx, principalId, user.UserId)
		if err != nil {
			return nil, errno.ServiceErr.WithMessage("get channel failed")
		}
	}

	return &ChannelProfile{
		UserBrief:       composer.BriefOf(user),
		CoverUrl:        user.CoverUrl,
		SubscriberCount: subscriberCount,
		SubscribedTo:    subscribedTo,
		VideoCount:      videoCount,
		IsSubscribed:    isSubscribed,
	}, nil
}

// GetWatchHistory 观看历史 保持首次观看的顺序 已删除的视频被过滤掉
func (service *UserService) GetWatchHistory(ctx context.Context, userId int64) ([]*composer.VideoView, error) {
	videoIds, err := db.GetWatchHistoryVideoIds(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get watch history failed")
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get watch history failed")
	}
	ordered := composer.OrderByIds(videos, videoIds)
	users, err := db.GetUsersByIds(ctx, composer.VideoOwnerIds(ordered))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get watch history failed")
	}
	return composer.EnrichVideos(ordered, users), nil
}
