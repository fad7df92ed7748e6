package router

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"VidTube.com/cmd/api/handlers/common"
	dashboard "VidTube.com/cmd/api/handlers/dashboard"
	interaction "VidTube.com/cmd/api/handlers/interaction"
	playlist "VidTube.com/cmd/api/handlers/playlist"
	relation "VidTube.com/cmd/api/handlers/relation"
	tweet "VidTube.com/cmd/api/handlers/tweet"
	user "VidTube.com/cmd/api/handlers/user"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"VidTube.com/pkg/errno"
)

// Register 注册全部路由 未挂Auth的路由允许匿名访问
func Register(r *server.Hertz) {
	r.GET("/healthcheck", func(ctx context.Context, c *app.RequestContext) {
		common.SendResponse(c, errno.Success, map[string]string{"status": "ok"})
	})

	v1 := r.Group("/api/v1")

	userGroup := v1.Group("/users")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.GET("/c/:username", user.GetChannelProfile)

		auth := userGroup.Group("", authfunc.Auth()...)
		auth.POST("/logout", user.Logout)
		auth.GET("/me", user.GetCurrentUser)
		auth.PATCH("/me", user.UpdateUser)
		auth.PATCH("/me/password", user.ChangePassword)
		auth.PATCH("/me/avatar", user.UpdateAvatar)
		auth.PATCH("/me/cover", user.UpdateCover)
		auth.GET("/me/history", user.GetWatchHistory)
	}

	videoGroup := v1.Group("/videos")
	{
		videoGroup.GET("", video.ListVideos)
		videoGroup.GET("/:video_id", video.GetVideo)

		auth := videoGroup.Group("", authfunc.Auth()...)
		auth.POST("", video.PublishVideo)
		auth.PATCH("/:video_id", video.UpdateVideo)
		auth.PATCH("/:video_id/thumbnail", video.UpdateThumbnail)
		auth.DELETE("/:video_id", video.DeleteVideo)
		auth.PATCH("/:video_id/toggle-publish", video.TogglePublishStatus)
	}

	likeGroup := v1.Group("/likes")
	{
		likeGroup.GET("/count/:target_kind/:target_id", interaction.GetLikeCount)

		auth := likeGroup.Group("", authfunc.Auth()...)
		auth.POST("/toggle/:target_kind/:target_id", interaction.ToggleLike)
		auth.GET("/videos", interaction.GetLikedVideos)
	}

	commentGroup := v1.Group("/comments")
	{
		commentGroup.GET("/video/:video_id", interaction.ListComments)

		auth := commentGroup.Group("", authfunc.Auth()...)
		auth.POST("/video/:video_id", interaction.CreateComment)
		auth.PATCH("/:comment_id", interaction.UpdateComment)
		auth.DELETE("/:comment_id", interaction.DeleteComment)
	}

	subscriptionGroup := v1.Group("/subscriptions")
	{
		subscriptionGroup.GET("/c/:channel_id/subscribers", relation.GetChannelSubscribers)

		auth := subscriptionGroup.Group("", authfunc.Auth()...)
		auth.POST("/c/:channel_id", relation.ToggleSubscription)
		auth.GET("/channels", relation.GetSubscribedChannels)
	}

	tweetGroup := v1.Group("/tweets")
	{
		tweetGroup.GET("/user/:user_id", tweet.GetUserTweets)

		auth := tweetGroup.Group("", authfunc.Auth()...)
		auth.POST("", tweet.CreateTweet)
		auth.PATCH("/:tweet_id", tweet.UpdateTweet)
		auth.DELETE("/:tweet_id", tweet.DeleteTweet)
	}

	playlistGroup := v1.Group("/playlists")
	{
		playlistGroup.GET("", playlist.GetUserPlaylists)
		playlistGroup.GET("/:playlist_id", playlist.GetPlaylist)

		auth := playlistGroup.Group("", authfunc.Auth()...)
		auth.POST("", playlist.CreatePlaylist)
		auth.PATCH("/:playlist_id", playlist.UpdatePlaylist)
		auth.DELETE("/:playlist_id", playlist.DeletePlaylist)
		auth.POST("/:playlist_id/videos/:video_id", playlist.AddVideoToPlaylist)
		auth.DELETE("/:playlist_id/videos/:video_id", playlist.RemoveVideoFromPlaylist)
	}

	dashboardGroup := v1.Group("/dashboard", authfunc.Auth()...)
	{
		dashboardGroup.GET("/stats", dashboard.GetChannelStats)
		dashboardGroup.GET("/videos", dashboard.GetChannelVideos)
	}
}
