package service

import (
	"context"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/playlist/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

// PlaylistView 播放列表视图 成员视频按加入顺序解析成完整视图
type PlaylistView struct {
	*model.Playlist
	Owner  *composer.UserBrief   `json:"owner,omitempty"`
	Videos []*composer.VideoView `json:"videos"`
}

func (service *PlaylistService) CreatePlaylist(ctx context.Context, userId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.RequestErr.WithMessage("name is required")
	}
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   utils.NowString(),
		UpdatedAt:   utils.NowString(),
	}
	if err := db.CreatePlaylist(ctx, playlist); err != nil {
		return nil, errno.ServiceErr.WithMessage("create playlist failed")
	}
	return playlist, nil
}

// GetPlaylistById 播放列表详情 成员按加入顺序 已删除的视频被过滤掉
func (service *PlaylistService) GetPlaylistById(ctx context.Context, playlistId int64) (*PlaylistView, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("playlist id is invalid")
	}
	playlist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Playlist does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get playlist failed")
	}

	videoIds, err := db.GetPlaylistVideoIds(ctx, playlistId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get playlist failed")
	}
	videos, err := videodb.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get playlist failed")
	}
	ordered := composer.OrderByIds(videos, videoIds)

	ownerIds := append(composer.VideoOwnerIds(ordered), playlist.UserId)
	users, err := userdb.GetUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get playlist failed")
	}
	return &PlaylistView{
		Playlist: playlist,
		Owner:    composer.BriefOf(users[playlist.UserId]),
		Videos:   composer.EnrichVideos(ordered, users),
	}, nil
}

func (service *PlaylistService) GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	if userId <= 0 {
		return nil, errno.ParamErr.WithMessage("user id is invalid")
	}
	playlists, err := db.GetUserPlaylists(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get playlists failed")
	}
	return playlists, nil
}

func (service *PlaylistService) UpdatePlaylist(ctx context.Context, userId, playlistId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errno.RequestErr.WithMessage("name is required")
	}
	playlist, err := service.ownedPlaylist(ctx, userId, playlistId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdatePlaylist(ctx, playlistId, name, description); err != nil {
		return nil, errno.ServiceErr.WithMessage("update playlist failed")
	}
	playlist.Name = name
	playlist.Description = description
	return playlist, nil
}

func (service *PlaylistService) DeletePlaylist(ctx context.Context, userId, playlistId int64) error {
	if _, err := service.ownedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(ctx, playlistId); err != nil {
		return errno.ServiceErr.WithMessage("delete playlist failed")
	}
	return nil
}

// AddVideo 加入成员 重复加入不报错 集合语义
func (service *PlaylistService) AddVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("video id is invalid")
	}
	if _, err := service.ownedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	if _, err := videodb.GetVideo(ctx, videoId); err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return errno.ServiceErr.WithMessage("add video to playlist failed")
	}
	if err := db.AddVideoToPlaylist(ctx, playlistId, videoId); err != nil {
		return errno.ServiceErr.WithMessage("add video to playlist failed")
	}
	return nil
}

func (service *PlaylistService) RemoveVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if videoId <= 0 {
		return errno.ParamErr.WithMessage("video id is invalid")
	}
	if _, err := service.ownedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	if err := db.RemoveVideoFromPlaylist(ctx, playlistId, videoId); err != nil {
		return errno.ServiceErr.WithMessage("remove video from playlist failed")
	}
	return nil
}

// ownedPlaylist 属主校验前必须重新读库
func (service *PlaylistService) ownedPlaylist(ctx context.Context, userId, playlistId int64) (*model.Playlist, error) {
	if playlistId <= 0 {
		return nil, errno.ParamErr.WithMessage("playlist id is invalid")
	}
	playlist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Playlist does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get playlist failed")
	}
	if err := authz.AssertOwner(playlist, userId); err != nil {
		return nil, err
	}
	return playlist, nil
}
