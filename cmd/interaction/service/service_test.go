package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/config"
	"VidTube.com/pkg/constants"
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
	db.Init()
	redis.Init()
}

func TestValidateContent(t *testing.T) {
	service := NewCommentService(context.Background())

	t.Run("BlankRejected", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\t\n"} {
			err := service.validateContent(content)
			assert.Error(t, err)
			assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
		}
	})

	t.Run("TooLongRejected", func(t *testing.T) {
		err := service.validateContent(strings.Repeat("a", 501))
		assert.Error(t, err)
	})

	t.Run("BoundaryAccepted", func(t *testing.T) {
		assert.NoError(t, service.validateContent(strings.Repeat("a", 500)))
	})

	t.Run("RuneCountNotByteCount", func(t *testing.T) {
		// 500个多字节字符 按字符数算没有超限
		assert.NoError(t, service.validateContent(strings.Repeat("好", 500)))
	})
}

func TestToggleLikeValidation(t *testing.T) {
	service := NewLikeActionService(context.Background())
	ctx := context.Background()

	t.Run("InvalidTargetKind", func(t *testing.T) {
		_, err := service.Toggle(ctx, 1, "playlist", 100)
		assert.Error(t, err)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("InvalidTargetId", func(t *testing.T) {
		_, err := service.Toggle(ctx, 1, "video", 0)
		assert.Error(t, err)
	})
}

func TestGetLikeCountValidation(t *testing.T) {
	service := NewLikeActionService(context.Background())
	ctx := context.Background()

	_, err := service.GetLikeCount(ctx, "playlist", 100)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = service.GetLikeCount(ctx, constants.LikeTargetVideo, 0)
	assert.Error(t, err)
}

// 切换后立刻读计数 缓存失效保证读到的是最新值
func TestGetLikeCountCacheAside(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	service := NewLikeActionService(ctx)
	userId := utils.GenerateID()
	videoId := utils.GenerateID()

	result, err := service.Toggle(ctx, userId, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateCreated, result.State)

	count, err := service.GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// 第二次读走缓存命中路径 值不变
	count, err = service.GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	result, err = service.Toggle(ctx, userId, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateRemoved, result.State)

	count, err = service.GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
