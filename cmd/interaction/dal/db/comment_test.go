package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
)

func TestVideoCommentsPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	videoId := utils.GenerateID()
	userId := utils.GenerateID()

	now := utils.NowString()
	for i := 0; i < 5; i++ {
		require.NoError(t, CreateComment(ctx, &model.Comment{
			CommentId: utils.GenerateID(),
			UserId:    userId,
			VideoId:   videoId,
			Content:   fmt.Sprintf("comment %d", i),
			CreatedAt: now,
			UpdatedAt: now,
		}))
	}

	count, err := GetVideoCommentCount(ctx, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)

	// 同一创建时刻下排序必须稳定 两页拼起来无重复无遗漏
	page1, err := GetVideoCommentsByPart(ctx, videoId, 1, 3)
	require.NoError(t, err)
	page2, err := GetVideoCommentsByPart(ctx, videoId, 2, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	require.Len(t, page2, 2)

	seen := make(map[int64]bool)
	for _, c := range append(page1, page2...) {
		assert.False(t, seen[c.CommentId])
		seen[c.CommentId] = true
	}
	assert.Len(t, seen, 5)
}

func TestDeleteCommentsOfVideo(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	videoId := utils.GenerateID()

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		UserId:    utils.GenerateID(),
		VideoId:   videoId,
		Content:   "to be removed",
		CreatedAt: utils.NowString(),
		UpdatedAt: utils.NowString(),
	}
	require.NoError(t, CreateComment(ctx, comment))
	require.NoError(t, DeleteCommentsOfVideo(ctx, videoId))

	count, err := GetVideoCommentCount(ctx, videoId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
