package jwt

import (
	"context"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzjwt "github.com/hertz-contrib/jwt"

	"VidTube.com/config"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
)

// 双token方案 短效access token走Authorization头 长效refresh token走Refresh-Token头
const (
	IdentityKey = "user_id"

	AccessTokenTimeout  = 15 * time.Minute
	RefreshTokenTimeout = 7 * 24 * time.Hour

	NewAccessTokenHeader = "New-Access-Token"
)

var (
	AccessTokenJwt  *hertzjwt.HertzJWTMiddleware
	RefreshTokenJwt *hertzjwt.HertzJWTMiddleware
)

func newJwtMiddleware(key []byte, timeout time.Duration, tokenLookup string) *hertzjwt.HertzJWTMiddleware {
	mw, err := hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:         "vidtube",
		Key:           key,
		Timeout:       timeout,
		IdentityKey:   IdentityKey,
		TokenLookup:   tokenLookup,
		TokenHeadName: "Bearer",
		PayloadFunc: func(data interface{}) hertzjwt.MapClaims {
			if userId, ok := data.(int64); ok {
				return hertzjwt.MapClaims{IdentityKey: userId}
			}
			return hertzjwt.MapClaims{}
		},
	})
	if err != nil {
		hlog.Fatalf("Failed to init jwt middleware: %v", err)
	}
	return mw
}

func AccessTokenJwtInit() {
	AccessTokenJwt = newJwtMiddleware(
		[]byte(config.ConfigInfo.Jwt.AccessSecret), AccessTokenTimeout, "header: Authorization")
}

func RefreshTokenJwtInit() {
	RefreshTokenJwt = newJwtMiddleware(
		[]byte(config.ConfigInfo.Jwt.RefreshSecret), RefreshTokenTimeout, "header: Refresh-Token")
}

// GenerateTokenPair 登录成功后签发access+refresh
func GenerateTokenPair(userId int64) (accessToken, refreshToken string, err error) {
	accessToken, _, err = AccessTokenJwt.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwt.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// IsAccessTokenAvailable 校验access token 成功时把user_id放进请求上下文
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwt.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	c.Set(IdentityKey, utils.Transfer(claims[IdentityKey]))
	return true
}

// IsRefreshTokenAvailable 校验refresh token
func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := RefreshTokenJwt.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	c.Set(IdentityKey, utils.Transfer(claims[IdentityKey]))
	return true
}

// GenerateAccessToken refresh token未过期时 续签一个新的access token放在响应头里
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return
	}
	token, _, err := AccessTokenJwt.TokenGenerator(utils.Transfer(v))
	if err != nil {
		hlog.CtxWarnf(ctx, "Failed to renew access token: %v", err)
		return
	}
	c.Header(NewAccessTokenHeader, token)
}

// GetUserId 从请求上下文取当前主体 未认证返回错误
func GetUserId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, exists := c.Get(IdentityKey)
	if !exists {
		return 0, errno.TokenInvailedErr
	}
	userId := utils.Transfer(v)
	if userId <= 0 {
		return 0, errno.TokenInvailedErr
	}
	return userId, nil
}

// GetUserIdOrAnonymous 匿名读场景 没有token时principal为0
func GetUserIdOrAnonymous(ctx context.Context, c *app.RequestContext) int64 {
	if !IsAccessTokenAvailable(ctx, c) {
		return 0
	}
	userId, err := GetUserId(ctx, c)
	if err != nil {
		return 0
	}
	return userId
}
