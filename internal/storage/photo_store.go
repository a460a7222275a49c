package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BeautyProBR/beautypro-api/internal/config"
)

// S3API é o recorte do client S3 que o PhotoStore usa.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// PhotoStore guarda fotos de serviço no S3. Sem bucket configurado
// todas as operações viram no-op e o upload responde 503.
type PhotoStore struct {
	bucket     string
	region     string
	publicBase string
	client     S3API
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	if cfg.S3Bucket == "" {
		return &PhotoStore{}
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &PhotoStore{
		bucket:     cfg.S3Bucket,
		region:     cfg.S3Region,
		publicBase: cfg.MediaPublicBase,
		client:     client,
	}
}

func (s *PhotoStore) Enabled() bool {
	return s != nil && s.bucket != "" && s.client != nil
}

// UploadServicePhoto grava o WebP já processado e devolve a URL pública.
func (s *PhotoStore) UploadServicePhoto(
	ctx context.Context,
	professionalID uint,
	serviceID uint,
	data []byte,
) (string, error) {

	if !s.Enabled() {
		return "", fmt.Errorf("photo store disabled")
	}

	key := fmt.Sprintf("services/%d/%d.webp", professionalID, serviceID)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}

	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s", s.publicBase, key), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
