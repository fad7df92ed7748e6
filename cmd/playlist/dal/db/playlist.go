package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(&playlist).Error; err != nil {
		return nil, err
	}
	return &playlist, nil
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, name, description string) error {
	return DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).
		Updates(map[string]interface{}{"name": name, "description": description, "updated_at": utils.NowString()}).Error
}

// DeletePlaylist 在删除播放列表的同时 清理它的成员记录
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return err
	}
	return DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
}

// AddVideoToPlaylist 集合语义 重复加入由唯一索引拦下并忽略
func AddVideoToPlaylist(ctx context.Context, playlistId, videoId int64) error {
	err := DB.WithContext(ctx).Create(&model.PlaylistVideo{
		Id:         utils.GenerateID(),
		PlaylistId: playlistId,
		VideoId:    videoId,
		CreatedAt:  utils.NowString(),
	}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return errors.Wrapf(err, "AddVideoToPlaylist failed,err:%v", err)
	}
	return nil
}

func RemoveVideoFromPlaylist(ctx context.Context, playlistId, videoId int64) error {
	return DB.WithContext(ctx).
		Where("playlist_id = ? And video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error
}

// GetPlaylistVideoIds 按加入顺序返回成员视频ID
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("id").Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteVideoFromAllPlaylists 视频删除时的级联清理
func DeleteVideoFromAllPlaylists(ctx context.Context, videoId int64) error {
	return DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.PlaylistVideo{}).Error
}
