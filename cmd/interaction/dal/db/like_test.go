package db

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VidTube.com/config"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/utils"
)

func setupTestDB(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	config.Init()
	database.Init()
	Init()
}

func TestToggleLikeRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	videoId := utils.GenerateID()

	state, edge, err := ToggleLike(ctx, userId, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateCreated, state)
	require.NotNil(t, edge)
	assert.Equal(t, userId, edge.UserId)

	liked, err := IsLiked(ctx, userId, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	state, _, err = ToggleLike(ctx, userId, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateRemoved, state)

	count, err = GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 同一用户对不同类型目标的点赞互不干扰
func TestToggleLikeTargetKindsIndependent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	targetId := utils.GenerateID()

	for _, kind := range []string{constants.LikeTargetVideo, constants.LikeTargetComment, constants.LikeTargetTweet} {
		state, _, err := ToggleLike(ctx, userId, kind, targetId)
		require.NoError(t, err)
		assert.Equal(t, constants.ToggleStateCreated, state)
	}
	for _, kind := range []string{constants.LikeTargetVideo, constants.LikeTargetComment, constants.LikeTargetTweet} {
		count, err := GetLikeCount(ctx, kind, targetId)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	}
}

// 并发切换下同一(user,target)至多一条边 不会出现重复行
func TestToggleLikeConcurrent(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	videoId := utils.GenerateID()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := ToggleLike(ctx, userId, constants.LikeTargetVideo, videoId)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	count, err := GetLikeCount(ctx, constants.LikeTargetVideo, videoId)
	require.NoError(t, err)
	assert.LessOrEqual(t, count, int64(1))
}

func TestGetLikedVideoIdsOrder(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	first := utils.GenerateID()
	second := utils.GenerateID()

	_, _, err := ToggleLike(ctx, userId, constants.LikeTargetVideo, first)
	require.NoError(t, err)
	_, _, err = ToggleLike(ctx, userId, constants.LikeTargetVideo, second)
	require.NoError(t, err)

	ids, err := GetLikedVideoIds(ctx, userId)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, first, ids[0])
	assert.Equal(t, second, ids[1])
}
