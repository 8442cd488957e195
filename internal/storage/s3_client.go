package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"goblog/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type Storage interface {
	Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error)
	ObjectURL(key string) string
	Delete(ctx context.Context, key string) error
}

type S3Client struct {
	client *minio.Client
	cfg    *config.Config
}

func NewS3Client(cfg *config.Config) (*S3Client, error) {
	client, err := minio.New(cfg.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		Secure: cfg.S3.UseSSL,
		Region: cfg.S3.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации S3 клиента: %w", err)
	}

	return &S3Client{client: client, cfg: cfg}, nil
}

// Upload загружает файл и возвращает ключ объекта вида {timestamp}-{имя файла}.
// Ключ не экранируется, вызывающий код не должен считать его безопасным сегментом пути.
func (s *S3Client) Upload(ctx context.Context, fileName string, file io.Reader, size int64) (string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	objectKey := fmt.Sprintf("%d-%s", now.UnixMilli(), fileName)

	_, err := s.client.PutObject(ctx, s.cfg.S3.Bucket, objectKey, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	return objectKey, nil
}

// ObjectURL возвращает публичный адрес объекта в бакете
func (s *S3Client) ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.S3.Bucket, s.cfg.S3.Region, key)
}

func (s *S3Client) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.cfg.S3.Bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из S3: %w", err)
	}
	return nil
}
