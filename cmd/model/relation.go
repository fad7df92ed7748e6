package model

// Subscription 订阅边 subscriber订阅channel 两端都是用户
type Subscription struct {
	SubscriptionId int64  `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	SubscriberId   int64  `gorm:"column:subscriber_id;uniqueIndex:uk_subscriber_channel" json:"subscriber_id"`
	ChannelId      int64  `gorm:"column:channel_id;uniqueIndex:uk_subscriber_channel;index:idx_channel" json:"channel_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}
