package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// IsVideoInHistory 观看历史是否已包含该视频 决定播放量是否+1
func IsVideoInHistory(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ? And video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddWatchHistory 集合式插入 已存在的(user,video)对由唯一索引拦下并忽略
// 不会把旧条目挪到最新位置
func AddWatchHistory(ctx context.Context, userId, videoId int64) error {
	err := DB.WithContext(ctx).Create(&model.WatchHistory{
		HistoryId: utils.GenerateID(),
		UserId:    userId,
		VideoId:   videoId,
		WatchTime: utils.NowString(),
	}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return nil
}

// GetWatchHistoryVideoIds 按插入顺序返回历史中的视频ID
func GetWatchHistoryVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.WatchHistory{}).
		Where("user_id = ?", userId).Order("history_id").Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteHistoryOfVideo 视频删除时的级联清理
func DeleteHistoryOfVideo(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.WatchHistory{}).Error
}
