package model

// User 同时也是一个频道 user_name即频道的handle
type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string `gorm:"column:user_name;uniqueIndex:uk_user_name;size:64" json:"user_name"`
	FullName  string `gorm:"column:full_name;size:64" json:"full_name"`
	Email     string `gorm:"column:email;size:128" json:"email"`
	Password  string `gorm:"column:password;size:128" json:"-"`
	AvatarUrl string `gorm:"column:avatar_url;size:256" json:"avatar_url"`
	CoverUrl  string `gorm:"column:cover_url;size:256" json:"cover_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// WatchHistory 用户观看历史 每对(user,video)至多一条 插入顺序即历史顺序
type WatchHistory struct {
	HistoryId int64  `gorm:"column:history_id;primaryKey" json:"history_id"`
	UserId    int64  `gorm:"column:user_id;uniqueIndex:uk_user_video" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;uniqueIndex:uk_user_video" json:"video_id"`
	WatchTime string `gorm:"column:watch_time" json:"watch_time"`
}

func (w *WatchHistory) TableName() string {
	return "user_watch_histories"
}
