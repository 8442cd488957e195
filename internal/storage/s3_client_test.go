package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goblog/internal/config"
)

func TestNewS3Client(t *testing.T) {
	cfg := &config.Config{}
	cfg.S3.Endpoint = "s3.us-east-1.amazonaws.com"
	cfg.S3.AccessKey = "key"
	cfg.S3.SecretKey = "secret"
	cfg.S3.Bucket = "blog-covers"
	cfg.S3.Region = "us-east-1"
	cfg.S3.UseSSL = true

	client, err := NewS3Client(cfg)

	require.NoError(t, err)
	require.NotNil(t, client)
}

func TestS3Client_ObjectURL(t *testing.T) {
	cfg := &config.Config{}
	cfg.S3.Bucket = "blog-covers"
	cfg.S3.Region = "eu-west-1"

	client := &S3Client{cfg: cfg}

	t.Run("Адрес собирается из бакета, региона и ключа", func(t *testing.T) {
		url := client.ObjectURL("1700000000000-cover.jpg")

		assert.Equal(t,
			"https://blog-covers.s3.eu-west-1.amazonaws.com/1700000000000-cover.jpg",
			url)
	})
}
