package service

import (
	"context"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	relationdb "VidTube.com/cmd/relation/dal/db"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/errno"
)

// DashboardService 创作者后台 频道维度的统计与清单
type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// ChannelStats 频道统计 没有任何内容的新频道各项都是0
type ChannelStats struct {
	TotalVideos      int64 `json:"total_videos"`
	TotalViews       int64 `json:"total_views"`
	TotalSubscribers int64 `json:"total_subscribers"`
	TotalLikes       int64 `json:"total_likes"`
	TotalTweets      int64 `json:"total_tweets"`
}

// ChannelVideo 后台视频条目 带各自的点赞数
type ChannelVideo struct {
	*composer.VideoView
	LikeCount int64 `json:"like_count"`
}

// GetChannelStats 聚合频道的视频数/播放量/订阅数/点赞数/推文数
func (service *DashboardService) GetChannelStats(ctx context.Context, userId int64) (*ChannelStats, error) {
	videoCount, err := videodb.GetUserVideoCount(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}
	visitTotal, err := videodb.GetUserVisitTotal(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}
	subscriberCount, err := relationdb.GetSubscriberCount(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}
	videoIds, err := videodb.GetUserVideoIds(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}
	likeTotal, err := interactiondb.GetLikeCountForVideos(ctx, videoIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}
	tweetCount, err := tweetdb.GetUserTweetCount(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel stats failed")
	}

	return &ChannelStats{
		TotalVideos:      videoCount,
		TotalViews:       visitTotal,
		TotalSubscribers: subscriberCount,
		TotalLikes:       likeTotal,
		TotalTweets:      tweetCount,
	}, nil
}

// GetChannelVideos 频道的全部视频 每条带自己的点赞数
func (service *DashboardService) GetChannelVideos(ctx context.Context, userId int64) ([]*ChannelVideo, error) {
	videos, err := videodb.GetUserVideos(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel videos failed")
	}
	videoIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		videoIds = append(videoIds, v.VideoId)
	}
	likeCounts, err := interactiondb.GetLikeCountMapForVideos(ctx, videoIds)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel videos failed")
	}
	users, err := userdb.GetUsersByIds(ctx, composer.VideoOwnerIds(videos))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get channel videos failed")
	}

	list := make([]*ChannelVideo, 0, len(videos))
	for _, v := range videos {
		list = append(list, &ChannelVideo{
			VideoView: composer.EnrichVideo(v, users),
			LikeCount: likeCounts[v.VideoId],
		})
	}
	return list, nil
}
