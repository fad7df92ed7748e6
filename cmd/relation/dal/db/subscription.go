package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleSubscription 订阅边切换 与点赞边同一套原子写法
// DELETE命中即removed 否则INSERT 唯一索引冲突按已订阅处理
func ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (string, *model.Subscription, error) {
	result := DB.WithContext(ctx).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return "", nil, errors.Wrapf(result.Error, "ToggleSubscription delete failed,err:%v", result.Error)
	}
	if result.RowsAffected > 0 {
		return constants.ToggleStateRemoved, nil, nil
	}

	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      utils.NowString(),
	}
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return constants.ToggleStateCreated, nil, nil
		}
		return "", nil, errors.Wrapf(err, "ToggleSubscription create failed,err:%v", err)
	}
	return constants.ToggleStateCreated, sub, nil
}

// GetSubscriberCount 订阅这个频道的人数
func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

// GetSubscribedToCount 这个用户订阅了多少频道
func GetSubscribedToCount(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSubscriberIds 频道的订阅者ID列表
func GetSubscriberIds(ctx context.Context, channelId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Select("subscriber_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetSubscribedChannelIds 用户订阅的频道ID列表
func GetSubscribedChannelIds(ctx context.Context, subscriberId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Select("channel_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
