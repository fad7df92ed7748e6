package handlers

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/cmd/tweet/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
)

type TweetParam struct {
	Content string `form:"content" json:"content"`
}

func CreateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	var param TweetParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).CreateTweet(ctx, userId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, tweet)
}

// GetUserTweets 某用户的推文 允许匿名访问
func GetUserTweets(ctx context.Context, c *app.RequestContext) {
	userId, err := utils.ConvertStringToInt64(c.Param("user_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("user id is invalid"), nil)
		return
	}
	tweets, err := service.NewTweetService(ctx).GetUserTweets(ctx, userId)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, tweets)
}

func UpdateTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("tweet id is invalid"), nil)
		return
	}
	var param TweetParam
	if err := c.Bind(&param); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweet, err := service.NewTweetService(ctx).UpdateTweet(ctx, userId, tweetId, param.Content)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, tweet)
}

func DeleteTweet(ctx context.Context, c *app.RequestContext) {
	userId, err := jwt.GetUserId(ctx, c)
	if err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	tweetId, err := utils.ConvertStringToInt64(c.Param("tweet_id"))
	if err != nil {
		common.SendResponse(c, errno.ParamErr.WithMessage("tweet id is invalid"), nil)
		return
	}
	if err := service.NewTweetService(ctx).DeleteTweet(ctx, userId, tweetId); err != nil {
		common.SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	common.SendResponse(c, errno.Success, nil)
}
