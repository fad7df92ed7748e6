package model

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	Content   string `gorm:"column:content;size:512" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (c *Comment) GetOwnerId() int64 {
	return c.UserId
}

// Like 点赞边 带标签的多态目标 (target_kind, target_id)
// 唯一索引保证同一(user, target)至多一条边 切换操作依赖该约束
type Like struct {
	LikeId     int64  `gorm:"column:like_id;primaryKey" json:"like_id"`
	UserId     int64  `gorm:"column:user_id;uniqueIndex:uk_user_target" json:"user_id"`
	TargetKind string `gorm:"column:target_kind;size:16;uniqueIndex:uk_user_target" json:"target_kind"`
	TargetId   int64  `gorm:"column:target_id;uniqueIndex:uk_user_target;index:idx_target" json:"target_id"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
}
