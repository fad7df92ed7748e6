package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

// GetVideosByIds 批量查询 只返回仍然存在的视频
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// VideoQuery 分页视频查询条件
type VideoQuery struct {
	Keyword   string
	UserId    int64
	SortBy    string
	SortOrder string
	PageNum   int64
	PageSize  int64
}

// 允许排序的列 防止任意字段注入到ORDER BY
var sortableColumns = map[string]string{
	"created_at":  "created_at",
	"updated_at":  "updated_at",
	"visit_count": "visit_count",
	"duration":    "duration",
	"title":       "title",
}

// QueryVideos 分页+过滤+排序 返回当前页和匹配总数
func QueryVideos(ctx context.Context, q *VideoQuery) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0, q.PageSize)
	var count int64

	tx := DB.WithContext(ctx).Model(&model.Video{})
	if q.Keyword != "" {
		pattern := "%" + q.Keyword + "%"
		// utf8mb4默认排序规则不区分大小写 LIKE即满足大小写无关匹配
		tx = tx.Where("title LIKE ? OR description LIKE ? OR tags LIKE ?", pattern, pattern, pattern)
	}
	if q.UserId != 0 {
		tx = tx.Where("user_id = ?", q.UserId)
	}

	if err := tx.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos count failed,err:%v", err)
	}

	if column, ok := sortableColumns[q.SortBy]; ok {
		order := column
		if q.SortOrder == "desc" {
			order += " DESC"
		}
		tx = tx.Order(order)
	}
	if err := tx.Offset(int((q.PageNum - 1) * q.PageSize)).Limit(int(q.PageSize)).Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "QueryVideos failed,err:%v", err)
	}
	return videos, count, nil
}

func UpdateVideoInfo(ctx context.Context, videoId int64, title, description string) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Updates(map[string]interface{}{"title": title, "description": description}).Error
}

func UpdateVideoCover(ctx context.Context, videoId int64, coverUrl string) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("cover_url", coverUrl).Error
}

func UpdatePublishStatus(ctx context.Context, videoId int64, isPublished bool) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", isPublished).Error
}

// IncrementVisitCount 播放量+1 单条UPDATE原子完成
func IncrementVisitCount(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	result := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("No rows has been affected")
	}
	return nil
}

// GetUserVideoIds 某频道的全部视频ID 统计点赞总数时用
func GetUserVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func GetUserVideoCount(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetUserVisitTotal 频道所有视频播放量之和 没有视频时返回0
func GetUserVisitTotal(ctx context.Context, userId int64) (int64, error) {
	var total *int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("SUM(visit_count)").Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

func GetUserVideos(ctx context.Context, userId int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}
