package common

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"VidTube.com/pkg/errno"
)

// Response 统一响应信封 status沿用errno里的错误码
type Response struct {
	Status  int64       `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Status:  Err.ErrCode,
		Data:    data,
		Message: Err.ErrMsg,
	})
}
