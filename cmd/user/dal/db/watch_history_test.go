package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VidTube.com/config"
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

// 历史是集合 重复观看不产生新条目 也不改变原有位置
func TestWatchHistorySetSemantics(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	first := utils.GenerateID()
	second := utils.GenerateID()

	require.NoError(t, AddWatchHistory(ctx, userId, first))
	require.NoError(t, AddWatchHistory(ctx, userId, second))
	// 重复观看第一个视频
	require.NoError(t, AddWatchHistory(ctx, userId, first))

	ids, err := GetWatchHistoryVideoIds(ctx, userId)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, first, ids[0])
	assert.Equal(t, second, ids[1])

	seen, err := IsVideoInHistory(ctx, userId, first)
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = IsVideoInHistory(ctx, userId, utils.GenerateID())
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestDeleteHistoryOfVideo(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()
	videoId := utils.GenerateID()

	require.NoError(t, AddWatchHistory(ctx, userId, videoId))
	require.NoError(t, DeleteHistoryOfVideo(ctx, videoId))

	ids, err := GetWatchHistoryVideoIds(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
