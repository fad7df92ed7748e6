package common

import (
	"io"

	"github.com/cloudwego/hertz/pkg/app"
)

// ReadFormFile 从multipart表单里读出文件内容和Content-Type
// 字段不存在时返回(nil, "", nil) 由调用方决定是否必填
func ReadFormFile(c *app.RequestContext, name string) ([]byte, string, error) {
	header, err := c.FormFile(name)
	if err != nil {
		return nil, "", nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, header.Header.Get("Content-Type"), nil
}
