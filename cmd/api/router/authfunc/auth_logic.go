package authfunc

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VidTube.com/cmd/api/handlers/common"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc access token过期但refresh token有效时 自动续签一个新的access token放进响应头
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				common.SendResponse(c, errno.ConvertErr(errno.TokenInvailedErr), nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
