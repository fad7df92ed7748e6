package service

import (
	"context"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
)

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

// PublishRequest 发布视频所需的全部输入 文件内容由handler从multipart表单里取出
type PublishRequest struct {
	UserId        int64
	Title         string
	Description   string
	Tags          string
	Duration      float64
	VideoData     []byte
	ThumbnailData []byte
	ThumbnailType string
}

// VideoPage 分页结果 总页数向上取整
type VideoPage struct {
	Videos      []*composer.VideoView `json:"videos"`
	CurrentPage int64                 `json:"current_page"`
	TotalPages  int64                 `json:"total_pages"`
	TotalCount  int64                 `json:"total_count"`
}

func validateVideoMeta(title, description string) error {
	if strings.TrimSpace(title) == "" {
		return errno.RequestErr.WithMessage("title is required")
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return errno.RequestErr.WithMessage("Title too long, maximum 100 characters allowed")
	}
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLength {
		return errno.RequestErr.WithMessage("Description too long, maximum 1000 characters allowed")
	}
	return nil
}

func (service *VideoService) PublishVideo(ctx context.Context, req *PublishRequest) (*model.Video, error) {
	if err := validateVideoMeta(req.Title, req.Description); err != nil {
		return nil, err
	}
	// 发布时标题和简介都必填 更新时只强制标题
	if strings.TrimSpace(req.Description) == "" {
		return nil, errno.RequestErr.WithMessage("description is required")
	}
	if len(req.VideoData) == 0 {
		return nil, errno.RequestErr.WithMessage("video file is required")
	}

	videoId := utils.GenerateID()
	vid := strconv.FormatInt(videoId, 10)
	videoUrl, err := oss.UploadVideoFile(ctx, req.VideoData, vid)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload video file: %v", err)
		return nil, errno.ServiceErr.WithMessage("publish video failed")
	}
	coverUrl := ""
	if len(req.ThumbnailData) > 0 {
		coverUrl, err = oss.UploadImage(ctx, req.ThumbnailData, "thumbnail/"+vid, req.ThumbnailType)
		if err != nil {
			hlog.CtxErrorf(ctx, "Failed to upload thumbnail: %v", err)
			return nil, errno.ServiceErr.WithMessage("publish video failed")
		}
	}

	video := &model.Video{
		VideoId:     videoId,
		UserId:      req.UserId,
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		VideoUrl:    videoUrl,
		CoverUrl:    coverUrl,
		Duration:    req.Duration,
		IsPublished: true,
		CreatedAt:   utils.NowString(),
		UpdatedAt:   utils.NowString(),
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, errno.ServiceErr.WithMessage("publish video failed")
	}
	return video, nil
}

// GetVideoById 取单个视频视图 viewerId大于0时带观看副作用
// 只有历史里没有这个视频时播放量才+1 之后把视频记进历史 两步互不影响
func (service *VideoService) GetVideoById(ctx context.Context, videoId, viewerId int64) (*composer.VideoView, error) {
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get video failed")
	}

	if viewerId > 0 {
		seen, err := userdb.IsVideoInHistory(ctx, viewerId, videoId)
		if err != nil {
			hlog.CtxWarnf(ctx, "Failed to check watch history: %v", err)
		} else if !seen {
			if err := db.IncrementVisitCount(ctx, videoId); err != nil {
				hlog.CtxWarnf(ctx, "Failed to increment visit count: %v", err)
			} else {
				video.VisitCount++
			}
		}
		if err := userdb.AddWatchHistory(ctx, viewerId, videoId); err != nil {
			hlog.CtxWarnf(ctx, "Failed to add watch history: %v", err)
		}
	}

	users, err := userdb.GetUsersByIds(ctx, []int64{video.UserId})
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get video failed")
	}
	return composer.EnrichVideo(video, users), nil
}

// GetAllVideos 视频列表 关键字过滤+白名单排序+分页
func (service *VideoService) GetAllVideos(ctx context.Context, query *db.VideoQuery) (*VideoPage, error) {
	query.PageNum, query.PageSize = composer.NormalizePage(query.PageNum, query.PageSize)
	videos, count, err := db.QueryVideos(ctx, query)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to query videos: %v", err)
		return nil, errno.ServiceErr.WithMessage("get videos failed")
	}
	users, err := userdb.GetUsersByIds(ctx, composer.VideoOwnerIds(videos))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get videos failed")
	}
	return &VideoPage{
		Videos:      composer.EnrichVideos(videos, users),
		CurrentPage: query.PageNum,
		TotalPages:  composer.TotalPages(count, query.PageSize),
		TotalCount:  count,
	}, nil
}

func (service *VideoService) UpdateVideo(ctx context.Context, userId, videoId int64, title, description string) (*model.Video, error) {
	if err := validateVideoMeta(title, description); err != nil {
		return nil, err
	}
	video, err := service.ownedVideo(ctx, userId, videoId)
	if err != nil {
		return nil, err
	}
	if err := db.UpdateVideoInfo(ctx, videoId, title, description); err != nil {
		return nil, errno.ServiceErr.WithMessage("update video failed")
	}
	video.Title = title
	video.Description = description
	return video, nil
}

// UpdateThumbnail 换封面 旧对象在新URL落库后删除
func (service *VideoService) UpdateThumbnail(ctx context.Context, userId, videoId int64, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", errno.RequestErr.WithMessage("thumbnail file is required")
	}
	video, err := service.ownedVideo(ctx, userId, videoId)
	if err != nil {
		return "", err
	}
	url, err := oss.UploadImage(ctx, data, "thumbnail/"+strconv.FormatInt(videoId, 10)+"_"+strconv.FormatInt(utils.GenerateID(), 10), contentType)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to upload thumbnail: %v", err)
		return "", errno.ServiceErr.WithMessage("update thumbnail failed")
	}
	if err := db.UpdateVideoCover(ctx, videoId, url); err != nil {
		return "", errno.ServiceErr.WithMessage("update thumbnail failed")
	}
	oss.RemoveByUrl(ctx, video.CoverUrl)
	return url, nil
}

// DeleteVideo 删除视频及其全部关联数据
// 评论及评论上的点赞 视频上的点赞 播放列表成员 观看历史 最后清理对象存储
func (service *VideoService) DeleteVideo(ctx context.Context, userId, videoId int64) error {
	video, err := service.ownedVideo(ctx, userId, videoId)
	if err != nil {
		return err
	}

	if err := db.DeleteVideo(ctx, videoId); err != nil {
		hlog.CtxErrorf(ctx, "Failed to delete video %d: %v", videoId, err)
		return errno.ServiceErr.WithMessage("delete video failed")
	}
	if err := interactiondb.DeleteCommentsOfVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean comments of video %d: %v", videoId, err)
	}
	if err := interactiondb.DeleteLikesOfTarget(ctx, constants.LikeTargetVideo, videoId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean likes of video %d: %v", videoId, err)
	}
	if err := playlistdb.DeleteVideoFromAllPlaylists(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean playlist entries of video %d: %v", videoId, err)
	}
	if err := userdb.DeleteHistoryOfVideo(ctx, videoId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean watch history of video %d: %v", videoId, err)
	}
	oss.RemoveByUrl(ctx, video.VideoUrl)
	oss.RemoveByUrl(ctx, video.CoverUrl)
	return nil
}

func (service *VideoService) TogglePublishStatus(ctx context.Context, userId, videoId int64) (bool, error) {
	video, err := service.ownedVideo(ctx, userId, videoId)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := db.UpdatePublishStatus(ctx, videoId, next); err != nil {
		return false, errno.ServiceErr.WithMessage("toggle publish status failed")
	}
	return next, nil
}

// ownedVideo 属主校验前必须重新读库
func (service *VideoService) ownedVideo(ctx context.Context, userId, videoId int64) (*model.Video, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is invalid")
	}
	video, err := db.GetVideo(ctx, videoId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Video does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("get video failed")
	}
	if err := authz.AssertOwner(video, userId); err != nil {
		return nil, err
	}
	return video, nil
}
