package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
)

func TestOrderByIds(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 3, Title: "c"},
		{VideoId: 1, Title: "a"},
		{VideoId: 2, Title: "b"},
	}

	t.Run("KeepsGivenOrder", func(t *testing.T) {
		ordered := OrderByIds(videos, []int64{2, 3, 1})
		assert.Len(t, ordered, 3)
		assert.Equal(t, int64(2), ordered[0].VideoId)
		assert.Equal(t, int64(3), ordered[1].VideoId)
		assert.Equal(t, int64(1), ordered[2].VideoId)
	})

	t.Run("SkipsMissingVideos", func(t *testing.T) {
		// ID为99的视频已删除 结果里不应出现空洞
		ordered := OrderByIds(videos, []int64{1, 99, 2})
		assert.Len(t, ordered, 2)
		assert.Equal(t, int64(1), ordered[0].VideoId)
		assert.Equal(t, int64(2), ordered[1].VideoId)
	})

	t.Run("EmptyIds", func(t *testing.T) {
		assert.Empty(t, OrderByIds(videos, nil))
	})
}

func TestEnrichVideo(t *testing.T) {
	users := map[int64]*model.User{
		100: {UserId: 100, UserName: "alice", FullName: "Alice", AvatarUrl: "http://a/1.png"},
	}

	t.Run("OwnerProjected", func(t *testing.T) {
		view := EnrichVideo(&model.Video{VideoId: 1, UserId: 100}, users)
		assert.NotNil(t, view.Owner)
		assert.Equal(t, "alice", view.Owner.UserName)
		assert.Equal(t, int64(100), view.Owner.UserId)
	})

	t.Run("MissingOwnerIsNil", func(t *testing.T) {
		// owner已注销时投影为空 视图本身照常返回
		view := EnrichVideo(&model.Video{VideoId: 2, UserId: 999}, users)
		assert.Nil(t, view.Owner)
		assert.Equal(t, int64(2), view.VideoId)
	})
}

func TestEnrichComments(t *testing.T) {
	users := map[int64]*model.User{
		100: {UserId: 100, UserName: "alice"},
	}
	comments := []*model.Comment{
		{CommentId: 1, UserId: 100},
		{CommentId: 2, UserId: 200},
	}
	views := EnrichComments(comments, users)
	assert.Len(t, views, 2)
	assert.NotNil(t, views[0].Owner)
	assert.Nil(t, views[1].Owner)
}

func TestBriefOf(t *testing.T) {
	assert.Nil(t, BriefOf(nil))
	brief := BriefOf(&model.User{UserId: 1, UserName: "bob", Password: "secret"})
	assert.Equal(t, "bob", brief.UserName)
}

func TestNormalizePage(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		pageNum, pageSize := NormalizePage(0, 0)
		assert.Equal(t, int64(constants.DefaultPageNum), pageNum)
		assert.Equal(t, int64(constants.DefaultLimit), pageSize)
	})

	t.Run("NegativeValues", func(t *testing.T) {
		pageNum, pageSize := NormalizePage(-3, -10)
		assert.Equal(t, int64(constants.DefaultPageNum), pageNum)
		assert.Equal(t, int64(constants.DefaultLimit), pageSize)
	})

	t.Run("LimitCapped", func(t *testing.T) {
		_, pageSize := NormalizePage(1, constants.MaxLimit+50)
		assert.Equal(t, int64(constants.MaxLimit), pageSize)
	})

	t.Run("ValidValuesUntouched", func(t *testing.T) {
		pageNum, pageSize := NormalizePage(3, 20)
		assert.Equal(t, int64(3), pageNum)
		assert.Equal(t, int64(20), pageSize)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(0), TotalPages(5, 0))
}
