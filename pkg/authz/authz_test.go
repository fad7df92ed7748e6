package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
)

func TestAssertOwner(t *testing.T) {
	video := &model.Video{VideoId: 1, UserId: 100}

	t.Run("OwnerPasses", func(t *testing.T) {
		assert.NoError(t, AssertOwner(video, 100))
	})

	t.Run("NonOwnerRejected", func(t *testing.T) {
		err := AssertOwner(video, 200)
		assert.Error(t, err)
		e := errno.ConvertErr(err)
		assert.Equal(t, int64(errno.UnauthorizedCode), e.ErrCode)
	})

	t.Run("NilEntityIsNotFound", func(t *testing.T) {
		err := AssertOwner(nil, 100)
		assert.Error(t, err)
		e := errno.ConvertErr(err)
		assert.Equal(t, int64(errno.NotFoundCode), e.ErrCode)
	})
}

// 四类实体都要能过同一道属主校验
func TestAssertOwnerAcrossEntities(t *testing.T) {
	entities := []Authorizable{
		&model.Video{UserId: 7},
		&model.Comment{UserId: 7},
		&model.Tweet{UserId: 7},
		&model.Playlist{UserId: 7},
	}
	for _, entity := range entities {
		assert.NoError(t, AssertOwner(entity, 7))
		assert.Error(t, AssertOwner(entity, 8))
	}
}
