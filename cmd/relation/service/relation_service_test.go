package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"VidTube.com/pkg/errno"
)

func TestToggleSubscriptionValidation(t *testing.T) {
	service := NewRelationService(context.Background())
	ctx := context.Background()

	t.Run("SelfSubscriptionRejected", func(t *testing.T) {
		_, err := service.ToggleSubscription(ctx, 42, 42)
		assert.Error(t, err)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	})

	t.Run("InvalidChannelId", func(t *testing.T) {
		_, err := service.ToggleSubscription(ctx, 42, 0)
		assert.Error(t, err)
	})
}
