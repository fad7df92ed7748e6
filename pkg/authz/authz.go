package authz

import (
	"VidTube.com/pkg/errno"
)

// Authorizable 拥有单一属主的实体 Video/Tweet/Comment/Playlist均实现该接口
type Authorizable interface {
	GetOwnerId() int64
}

// AssertOwner 属主校验 所有写操作前都要先过这一道
// 实体必须是刚从数据库读出来的 不允许用缓存副本做校验
func AssertOwner(entity Authorizable, principalId int64) error {
	if entity == nil {
		return errno.NotFoundErr
	}
	if entity.GetOwnerId() != principalId {
		return errno.UnauthorizedErr
	}
	return nil
}
