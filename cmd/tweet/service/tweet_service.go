package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/cmd/tweet/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
)

type TweetService struct {
	ctx context.Context
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx}
}

func validateTweetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("content is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxTweetLength {
		return errno.RequestErr.WithMessage("Tweet too long, maximum 280 characters allowed")
	}
	return nil
}

func (service *TweetService) CreateTweet(ctx context.Context, userId int64, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content); err != nil {
		return nil, err
	}
	tweet := &model.Tweet{
		TweetId:   utils.GenerateID(),
		UserId:    userId,
		Content:   content,
		CreatedAt: utils.NowString(),
		UpdatedAt: utils.NowString(),
	}
	if err := db.CreateTweet(ctx, tweet); err != nil {
		return nil, errno.ServiceErr.WithMessage("create tweet failed")
	}
	return tweet, nil
}

// GetUserTweets 某用户的推文列表 创建时间倒序 owner替换为投影
func (service *TweetService) GetUserTweets(ctx context.Context, userId int64) ([]*composer.TweetView, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("user id is invalid")
	}
	exist, err := userdb.CheckUserExistById(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get tweets failed")
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("User does not exist")
	}
	tweets, err := db.GetUserTweets(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get tweets failed")
	}
	users, err := userdb.GetUsersByIds(ctx, composer.TweetOwnerIds(tweets))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get tweets failed")
	}
	return composer.EnrichTweets(tweets, users), nil
}

func (service *TweetService) UpdateTweet(ctx context.Context, userId, tweetId int64, content string) (*model.Tweet, error) {
	if err := validateTweetContent(content); err != nil {
		return nil, err
	}
	tweet, err := service.ownedTweet(ctx, userId, tweetId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateTweet(ctx, tweetId, content); err != nil {
		return nil, errno.ServiceErr.WithMessage("update tweet failed")
	}
	tweet.Content = content
	return tweet, nil
}

func (service *TweetService) DeleteTweet(ctx context.Context, userId, tweetId int64) error {
	if _, err := service.ownedTweet(ctx, userId, tweetId); err != nil {
		return err
	}
	if err := db.DeleteTweet(ctx, tweetId); err != nil {
		return errno.ServiceErr.WithMessage("delete tweet failed")
	}
	// 级联清理该推文上的点赞边
	if err := interactiondb.DeleteLikesOfTarget(ctx, constants.LikeTargetTweet, tweetId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean likes of tweet %d: %v", tweetId, err)
	}
	return nil
}

// ownedTweet 属主校验前必须重新读库
func (service *TweetService) ownedTweet(ctx context.Context, userId, tweetId int64) (*model.Tweet, error) {
	if tweetId <= 0 {
		return nil, errno.ParamErr.WithMessage("tweet id is invalid")
	}
	tweet, err := db.GetTweetInfo(ctx, tweetId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Tweet does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get tweet failed")
	}
	if err := authz.AssertOwner(tweet, userId); err != nil {
		return nil, err
	}
	return tweet, nil
}
