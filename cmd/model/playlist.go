package model

type Playlist struct {
	PlaylistId  int64  `gorm:"column:playlist_id;primaryKey" json:"playlist_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	Name        string `gorm:"column:name;size:128" json:"name"`
	Description string `gorm:"column:description;size:512" json:"description"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string `gorm:"column:updated_at" json:"updated_at"`
}

func (p *Playlist) GetOwnerId() int64 {
	return p.UserId
}

// PlaylistVideo 播放列表成员 唯一索引保证集合语义（无重复）
type PlaylistVideo struct {
	Id         int64  `gorm:"column:id;primaryKey" json:"id"`
	PlaylistId int64  `gorm:"column:playlist_id;uniqueIndex:uk_playlist_video" json:"playlist_id"`
	VideoId    int64  `gorm:"column:video_id;uniqueIndex:uk_playlist_video" json:"video_id"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
}
