package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"VidTube.com/config"
)

var minioClient *minio.Client

// Init 初始化MinIO客户端 资产存储协作方
func Init() {
	var err error
	minioClient, err = minio.New(config.ConfigInfo.Minio.Endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			config.ConfigInfo.Minio.AccessKeyID,
			config.ConfigInfo.Minio.SecretAccessKey, ""),
		Secure: false,
	})
	if err != nil {
		hlog.Fatalf("Failed to init minio client: %v", err)
	}
}
