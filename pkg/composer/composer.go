// Package composer 把归一化存储里的实体拼装成反范式读视图
// 对应原始聚合管道里的lookup+project+addFields 这里用纯函数表达
// 所有函数只做内存拼装 不碰存储 方便按实体类型复用和单测
package composer

import (
	"VidTube.com/cmd/model"
)

// UserBrief owner外键被替换成的投影 只露出handle/昵称/头像
type UserBrief struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

type VideoView struct {
	*model.Video
	Owner *UserBrief `json:"owner,omitempty"`
}

type CommentView struct {
	*model.Comment
	Owner *UserBrief `json:"owner,omitempty"`
}

type TweetView struct {
	*model.Tweet
	Owner *UserBrief `json:"owner,omitempty"`
}

func BriefOf(user *model.User) *UserBrief {
	if user == nil {
		return nil
	}
	return &UserBrief{
		UserId:    user.UserId,
		UserName:  user.UserName,
		FullName:  user.FullName,
		AvatarUrl: user.AvatarUrl,
	}
}

func VideoOwnerIds(videos []*model.Video) []int64 {
	ids := make([]int64, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.UserId)
	}
	return ids
}

func CommentOwnerIds(comments []*model.Comment) []int64 {
	ids := make([]int64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.UserId)
	}
	return ids
}

func TweetOwnerIds(tweets []*model.Tweet) []int64 {
	ids := make([]int64, 0, len(tweets))
	for _, t := range tweets {
		ids = append(ids, t.UserId)
	}
	return ids
}

// EnrichVideo owner不存在时投影为空 而不是报错
func EnrichVideo(video *model.Video, users map[int64]*model.User) *VideoView {
	return &VideoView{Video: video, Owner: BriefOf(users[video.UserId])}
}

func EnrichVideos(videos []*model.Video, users map[int64]*model.User) []*VideoView {
	views := make([]*VideoView, 0, len(videos))
	for _, v := range videos {
		views = append(views, EnrichVideo(v, users))
	}
	return views
}

func EnrichComments(comments []*model.Comment, users map[int64]*model.User) []*CommentView {
	views := make([]*CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, &CommentView{Comment: c, Owner: BriefOf(users[c.UserId])})
	}
	return views
}

func EnrichTweets(tweets []*model.Tweet, users map[int64]*model.User) []*TweetView {
	views := make([]*TweetView, 0, len(tweets))
	for _, t := range tweets {
		views = append(views, &TweetView{Tweet: t, Owner: BriefOf(users[t.UserId])})
	}
	return views
}

// OrderByIds 按给定ID顺序重排视频 已不存在的视频直接跳过
// 观看历史/播放列表解析都要保持各自的序
func OrderByIds(videos []*model.Video, ids []int64) []*model.Video {
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	ordered := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byId[id]; ok {
			ordered = append(ordered, v)
		}
	}
	return ordered
}
