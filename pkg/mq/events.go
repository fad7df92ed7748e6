package mq

// LikeEvent 点赞/取消点赞事件
type LikeEvent struct {
	UserID     int64  `json:"user_id"`
	TargetKind string `json:"target_kind"` // video / comment / tweet
	TargetID   int64  `json:"target_id"`
	State      string `json:"state"` // created / removed
	Timestamp  int64  `json:"timestamp"`
	EventID    string `json:"event_id"`
}

// SubscribeEvent 订阅/退订事件
type SubscribeEvent struct {
	SubscriberID int64  `json:"subscriber_id"`
	ChannelID    int64  `json:"channel_id"`
	State        string `json:"state"` // created / removed
	Timestamp    int64  `json:"timestamp"`
	EventID      string `json:"event_id"`
}

const (
	LikeEventExchange      = "like_events"
	SubscribeEventExchange = "subscribe_events"

	LikeEventQueue      = "like_event_queue"
	SubscribeEventQueue = "subscribe_event_queue"
)
