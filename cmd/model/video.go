package model

type Video struct {
	VideoId     int64   `gorm:"column:video_id;primaryKey" json:"video_id"`
	UserId      int64   `gorm:"column:user_id;index" json:"user_id"`
	Title       string  `gorm:"column:title;size:128" json:"title"`
	Description string  `gorm:"column:description;size:1024" json:"description"`
	Tags        string  `gorm:"column:tags;size:256" json:"tags"`
	VideoUrl    string  `gorm:"column:video_url;size:256" json:"video_url"`
	CoverUrl    string  `gorm:"column:cover_url;size:256" json:"cover_url"`
	Duration    float64 `gorm:"column:duration" json:"duration"`
	VisitCount  int64   `gorm:"column:visit_count" json:"visit_count"`
	IsPublished bool    `gorm:"column:is_published" json:"is_published"`
	CreatedAt   string  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string  `gorm:"column:updated_at" json:"updated_at"`
}

func (v *Video) GetOwnerId() int64 {
	return v.UserId
}
