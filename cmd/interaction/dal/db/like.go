package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ToggleLike 点赞边切换 不存在则建边 存在则删边
// 先按键DELETE（单条语句原子） 有行被删即为removed
// 否则INSERT 并发下撞到唯一索引说明别的请求刚建完边 视为已点赞成功
func ToggleLike(ctx context.Context, userId int64, targetKind string, targetId int64) (string, *model.Like, error) {
	result := DB.WithContext(ctx).
		Where("user_id = ? And target_kind = ? And target_id = ?", userId, targetKind, targetId).
		Delete(&model.Like{})
	if result.Error != nil {
		return "", nil, errors.Wrapf(result.Error, "ToggleLike delete failed,err:%v", result.Error)
	}
	if result.RowsAffected > 0 {
		return constants.ToggleStateRemoved, nil, nil
	}

	like := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     userId,
		TargetKind: targetKind,
		TargetId:   targetId,
		CreatedAt:  utils.NowString(),
	}
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 唯一约束冲突=边已存在 按幂等的created处理 不作为失败上抛
			return constants.ToggleStateCreated, nil, nil
		}
		return "", nil, errors.Wrapf(err, "ToggleLike create failed,err:%v", err)
	}
	return constants.ToggleStateCreated, like, nil
}

// GetLikeCount 某个目标的点赞数
func GetLikeCount(ctx context.Context, targetKind string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? And target_id = ?", targetKind, targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikeCountForVideos 一组视频收到的点赞总数 频道统计用
func GetLikeCountForVideos(ctx context.Context, videoIds []int64) (int64, error) {
	if len(videoIds) == 0 {
		return 0, nil
	}
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? And target_id IN (?)", constants.LikeTargetVideo, videoIds).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikeCountMapForVideos 按视频分组的点赞数
func GetLikeCountMapForVideos(ctx context.Context, videoIds []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(videoIds))
	if len(videoIds) == 0 {
		return counts, nil
	}
	type row struct {
		TargetId int64
		Cnt      int64
	}
	rows := make([]row, 0, len(videoIds))
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? And target_id IN (?)", constants.LikeTargetVideo, videoIds).
		Select("target_id, COUNT(*) as cnt").Group("target_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.TargetId] = r.Cnt
	}
	return counts, nil
}

// GetLikedVideoIds 用户点赞过的视频ID 按点赞先后排序
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_kind = ?", userId, constants.LikeTargetVideo).
		Order("like_id").Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func IsLiked(ctx context.Context, userId int64, targetKind string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? And target_kind = ? And target_id = ?", userId, targetKind, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteLikesOfTarget 目标实体删除时的级联清理
func DeleteLikesOfTarget(ctx context.Context, targetKind string, targetId int64) error {
	return DB.WithContext(ctx).
		Where("target_kind = ? And target_id = ?", targetKind, targetId).
		Delete(&model.Like{}).Error
}
