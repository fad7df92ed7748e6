package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	relationdb "VidTube.com/cmd/relation/dal/db"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
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
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	tweetdb.Init()
}

// 没有任何内容的新频道 统计各项都是0 不是错误
func TestChannelStatsZeroForEmptyChannel(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	userId := utils.GenerateID()

	stats, err := NewDashboardService(ctx).GetChannelStats(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalVideos)
	assert.Equal(t, int64(0), stats.TotalViews)
	assert.Equal(t, int64(0), stats.TotalSubscribers)
	assert.Equal(t, int64(0), stats.TotalLikes)
	assert.Equal(t, int64(0), stats.TotalTweets)

	videos, err := NewDashboardService(ctx).GetChannelVideos(ctx, userId)
	require.NoError(t, err)
	assert.Empty(t, videos)
}
