package oss

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"

	"VidTube.com/config"
)

const (
	PictureBucket = "picture"
	VideoBucket   = "video"

	location = "us-east-1"
)

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

func imageSuffix(contentType string) (string, error) {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg", nil
	case "image/png":
		return ".png", nil
	default:
		return "", fmt.Errorf("unsupported image format: %s", contentType)
	}
}

// UploadImage 上传头像/封面/缩略图 返回可公开访问的URL
func UploadImage(ctx context.Context, data []byte, objectName, contentType string) (string, error) {
	suffix, err := imageSuffix(contentType)
	if err != nil {
		return "", err
	}
	if err := ensureBucket(ctx, PictureBucket); err != nil {
		return "", err
	}
	objectName += suffix
	_, err = minioClient.PutObject(ctx, PictureBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}
	return publicURL(PictureBucket, objectName), nil
}

// UploadVideoFile 上传视频文件
func UploadVideoFile(ctx context.Context, data []byte, vid string) (string, error) {
	if err := ensureBucket(ctx, VideoBucket); err != nil {
		return "", err
	}
	objectName := "video/" + vid + "/video.mp4"
	_, err := minioClient.PutObject(ctx, VideoBucket, objectName,
		bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", err
	}
	return publicURL(VideoBucket, objectName), nil
}

// RemoveByUrl 按URL删除旧资产 URL对核心是不透明字符串 这里只负责还原出object key
// 删除失败只记日志 不阻塞主流程
func RemoveByUrl(ctx context.Context, rawUrl string) {
	if rawUrl == "" {
		return
	}
	prefix := config.ConfigInfo.Minio.PublicHost + "/"
	trimmed := strings.TrimPrefix(rawUrl, prefix)
	parts := strings.SplitN(trimmed, "/", 2)
	if len(parts) != 2 {
		hlog.Warnf("Unrecognized asset url, skip delete: %s", rawUrl)
		return
	}
	if err := minioClient.RemoveObject(ctx, parts[0], parts[1], minio.RemoveObjectOptions{}); err != nil {
		hlog.Warnf("Failed to delete %s: %v", rawUrl, err)
	}
}

func publicURL(bucketName, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicHost, bucketName, objectName)
}
