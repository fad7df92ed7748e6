package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return DB.WithContext(ctx).Create(tweet).Error
}

func GetTweetInfo(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(&tweet).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

func UpdateTweet(ctx context.Context, tweetId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).
		Updates(map[string]interface{}{"content": content, "updated_at": utils.NowString()}).Error
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	return DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error
}

// GetUserTweets 用户的推文 创建时间倒序 同刻按插入顺序
func GetUserTweets(ctx context.Context, userId int64) ([]*model.Tweet, error) {
	tweets := make([]*model.Tweet, 0)
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id").Find(&tweets).Error; err != nil {
		return nil, err
	}
	return tweets, nil
}

func GetUserTweetCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
