package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/config"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
)

func setupTestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	config.Init()
	database.Init()
	userdb.Init()
	db.Init()
}

func insertTestVideo(t *testing.T, ownerId int64) *model.Video {
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      ownerId,
		Title:       "origin title",
		Description: "origin description",
		IsPublished: true,
		CreatedAt:   utils.NowString(),
		UpdatedAt:   utils.NowString(),
	}
	require.NoError(t, db.InsertVideo(context.Background(), video))
	return video
}

func TestPublishVideoValidation(t *testing.T) {
	service := NewVideoService(context.Background())
	ctx := context.Background()

	t.Run("BlankTitle", func(t *testing.T) {
		_, err := service.PublishVideo(ctx, &PublishRequest{Title: "  ", Description: "d"})
		assert.Error(t, err)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("BlankDescription", func(t *testing.T) {
		_, err := service.PublishVideo(ctx, &PublishRequest{Title: "t", Description: "  "})
		assert.Error(t, err)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("MissingVideoFile", func(t *testing.T) {
		_, err := service.PublishVideo(ctx, &PublishRequest{Title: "t", Description: "d"})
		assert.Error(t, err)
	})
}

// 同一观看者只有首次观看让播放量+1 再看不变 匿名观看不计数
func TestViewCountIncrementsOncePerViewer(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	service := NewVideoService(ctx)
	video := insertTestVideo(t, utils.GenerateID())
	viewerId := utils.GenerateID()

	view, err := service.GetVideoById(ctx, video.VideoId, viewerId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.VisitCount)

	view, err = service.GetVideoById(ctx, video.VideoId, viewerId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.VisitCount)

	// 匿名访问不产生副作用
	view, err = service.GetVideoById(ctx, video.VideoId, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), view.VisitCount)

	stored, err := db.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.VisitCount)

	// 换一个观看者 再+1
	_, err = service.GetVideoById(ctx, video.VideoId, utils.GenerateID())
	require.NoError(t, err)
	stored, err = db.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.VisitCount)
}

// 非属主的写操作被拒绝 且实体保持原样
func TestNonOwnerMutationLeavesVideoUnmodified(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	service := NewVideoService(ctx)
	ownerId := utils.GenerateID()
	strangerId := utils.GenerateID()
	video := insertTestVideo(t, ownerId)

	_, err := service.UpdateVideo(ctx, strangerId, video.VideoId, "hijacked", "hijacked")
	require.Error(t, err)
	assert.Equal(t, int64(errno.UnauthorizedCode), errno.ConvertErr(err).ErrCode)

	_, err = service.TogglePublishStatus(ctx, strangerId, video.VideoId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.UnauthorizedCode), errno.ConvertErr(err).ErrCode)

	err = service.DeleteVideo(ctx, strangerId, video.VideoId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.UnauthorizedCode), errno.ConvertErr(err).ErrCode)

	stored, err := db.GetVideo(ctx, video.VideoId)
	require.NoError(t, err)
	assert.Equal(t, "origin title", stored.Title)
	assert.Equal(t, "origin description", stored.Description)
	assert.True(t, stored.IsPublished)
}
