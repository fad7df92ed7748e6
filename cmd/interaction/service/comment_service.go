package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/gorm"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/composer"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"

	pkgerrors "github.com/pkg/errors"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

func (service *CommentService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("content is required")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

// checkRateLimit 评论限频 redis故障时放行 不阻塞用户
func (service *CommentService) checkRateLimit(ctx context.Context, userId int64) error {
	count, err := redis.IncrCommentRate(ctx, userId)
	if err != nil {
		hlog.CtxWarnf(ctx, "Failed to check rate limit for user %d: %v", userId, err)
		return nil
	}
	if count > constants.CommentRateLimit {
		return errno.LimitExceededErr.WithMessage("Comment rate limit exceeded, please try again later")
	}
	return nil
}

func (service *CommentService) CreateComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is invalid")
	}
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	if err := service.checkRateLimit(ctx, userId); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		UserId:    userId,
		VideoId:   videoId,
		Content:   content,
		CreatedAt: utils.NowString(),
		UpdatedAt: utils.NowString(),
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, errno.ServiceErr.WithMessage("create comment failed")
	}
	return comment, nil
}

// GetVideoComments 某视频评论分页 创建时间倒序 owner替换为投影
func (service *CommentService) GetVideoComments(ctx context.Context, videoId, pageNum, pageSize int64) ([]*composer.CommentView, error) {
	if videoId <= 0 {
		return nil, errno.ParamErr.WithMessage("video id is invalid")
	}
	pageNum, pageSize = composer.NormalizePage(pageNum, pageSize)
	comments, err := db.GetVideoCommentsByPart(ctx, videoId, pageNum, pageSize)
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get comments failed")
	}
	users, err := userdb.GetUsersByIds(ctx, composer.CommentOwnerIds(comments))
	if err != nil {
		return nil, errno.ServiceErr.WithMessage("get comments failed")
	}
	return composer.EnrichComments(comments, users), nil
}

func (service *CommentService) UpdateComment(ctx context.Context, userId, commentId int64, content string) (*model.Comment, error) {
	if commentId <= 0 {
		return nil, errno.ParamErr.WithMessage("comment id is invalid")
	}
	if err := service.validateContent(content); err != nil {
		return nil, err
	}

	// 属主校验前必须重新读库
	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.NotFoundErr.WithMessage("Comment does not exist")
		}
		return nil, errno.ServiceErr.WithMessage("update comment failed")
	}
	if err := authz.AssertOwner(comment, userId); err != nil {
		return nil, err
	}

	if err := db.UpdateComment(ctx, commentId, content); err != nil {
		return nil, errno.ServiceErr.WithMessage("update comment failed")
	}
	comment.Content = content
	return comment, nil
}

func (service *CommentService) DeleteComment(ctx context.Context, userId, commentId int64) error {
	if commentId <= 0 {
		return errno.ParamErr.WithMessage("comment id is invalid")
	}

	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if pkgerrors.Is(err, gorm.ErrRecordNotFound) {
			return errno.NotFoundErr.WithMessage("Comment does not exist")
		}
		return errno.ServiceErr.WithMessage("delete comment failed")
	}
	if err := authz.AssertOwner(comment, userId); err != nil {
		return err
	}

	if err := db.DeleteComment(ctx, commentId); err != nil {
		return errno.ServiceErr.WithMessage("delete comment failed")
	}
	// 级联清理该评论上的点赞边
	if err := db.DeleteLikesOfTarget(ctx, constants.LikeTargetComment, commentId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to clean likes of comment %d: %v", commentId, err)
	}
	return nil
}
