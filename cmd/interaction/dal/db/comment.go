package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// 获取某一条评论的全部信息
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	var comment model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func UpdateComment(ctx context.Context, commentId int64, content string) error {
	return DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).
		Updates(map[string]interface{}{"content": content, "updated_at": utils.NowString()}).Error
}

func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error
}

// GetVideoCommentsByPart 某视频的评论分页 创建时间倒序 同刻按插入顺序稳定排序
func GetVideoCommentsByPart(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.Comment, error) {
	comments := make([]*model.Comment, 0, pageSize)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id").
		Offset(int((pageNum - 1) * pageSize)).Limit(int(pageSize)).
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// DeleteCommentsOfVideo 视频删除时的级联清理 连带每条评论上的点赞边
func DeleteCommentsOfVideo(ctx context.Context, videoId int64) error {
	commentIds := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Select("comment_id").Scan(&commentIds).Error; err != nil {
		return err
	}
	if len(commentIds) > 0 {
		if err := DB.WithContext(ctx).
			Where("target_kind = ? And target_id IN (?)", constants.LikeTargetComment, commentIds).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
	}
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Comment{}).Error
}
