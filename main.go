package main

import (
	"context"
	"fmt"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"

	"VidTube.com/cmd/api/router"
	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/interaction/infras/redis"
	playlistdb "VidTube.com/cmd/playlist/dal/db"
	relationdb "VidTube.com/cmd/relation/dal/db"
	tweetdb "VidTube.com/cmd/tweet/dal/db"
	userdb "VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/config"
	"VidTube.com/pkg/database"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
)

func Init() {
	config.Init()
	database.Init()
	userdb.Init()
	videodb.Init()
	interactiondb.Init()
	relationdb.Init()
	tweetdb.Init()
	playlistdb.Init()
	redis.Init()
	oss.Init()
	mq.Init()
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()
}

func main() {
	Init()
	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"status":  errno.ServiceErrCode,
				"message": fmt.Sprintf("internal error: %v", err),
			})
		})))

	router.Register(r)

	r.Spin()
}
