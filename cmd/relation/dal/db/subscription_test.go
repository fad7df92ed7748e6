package db

import (
	"context"
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

func TestToggleSubscriptionRoundTrip(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	subscriberId := utils.GenerateID()
	channelId := utils.GenerateID()

	state, sub, err := ToggleSubscription(ctx, subscriberId, channelId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateCreated, state)
	require.NotNil(t, sub)

	subscribed, err := IsSubscribed(ctx, subscriberId, channelId)
	require.NoError(t, err)
	assert.True(t, subscribed)

	count, err := GetSubscriberCount(ctx, channelId)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	state, _, err = ToggleSubscription(ctx, subscriberId, channelId)
	require.NoError(t, err)
	assert.Equal(t, constants.ToggleStateRemoved, state)

	count, err = GetSubscriberCount(ctx, channelId)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// 订阅是有向边 A订阅B不等于B订阅A
func TestSubscriptionIsDirected(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	a := utils.GenerateID()
	b := utils.GenerateID()

	_, _, err := ToggleSubscription(ctx, a, b)
	require.NoError(t, err)

	forward, err := IsSubscribed(ctx, a, b)
	require.NoError(t, err)
	assert.True(t, forward)

	backward, err := IsSubscribed(ctx, b, a)
	require.NoError(t, err)
	assert.False(t, backward)

	subscribedTo, err := GetSubscribedToCount(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, int64(1), subscribedTo)
}
