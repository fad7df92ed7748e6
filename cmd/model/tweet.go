package model

type Tweet struct {
	TweetId   int64  `gorm:"column:tweet_id;primaryKey" json:"tweet_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	Content   string `gorm:"column:content;size:512" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (t *Tweet) GetOwnerId() int64 {
	return t.UserId
}
