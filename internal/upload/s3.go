// Package upload sobe logos para o bucket público e devolve a URL que
// entra na chamada de atualização de perfil.
package upload

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/uturns/booking-agent/internal/config"
)

type Uploader struct {
	client *s3.Client
	bucket string
	prefix string
	region string
}

func NewUploader(cfg *config.Config) *Uploader {
	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		prefix: cfg.S3Prefix,
		region: cfg.S3Region,
	}
}

// UploadLogo normaliza e sobe a imagem; devolve a URL pública.
func (u *Uploader) UploadLogo(ctx context.Context, raw []byte) (string, error) {
	normalized, err := NormalizeLogo(raw)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s%s.webp", u.prefix, uuid.NewString())

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(normalized),
		ContentType: aws.String("image/webp"),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
