package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPageNum = 1
	DefaultLimit   = 10
	// 分页上限 防止一次性拉取全表
	MaxLimit = 100

	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
	MaxCommentLength     = 500
	MaxTweetLength       = 280

	// 每分钟单用户最大评论数
	CommentRateLimit = 10
)

// Like边的目标类型
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)

// 切换操作的结果状态
const (
	ToggleStateCreated = "created"
	ToggleStateRemoved = "removed"
)
