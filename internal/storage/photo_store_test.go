package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeautyProBR/beautypro-api/internal/config"
)

type fakeS3 struct {
	lastInput *s3.PutObjectInput
	err       error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadServicePhoto_KeyAndURL(t *testing.T) {
	fake := &fakeS3{}
	store := &PhotoStore{
		bucket: "beautypro-media",
		region: "us-east-1",
		client: fake,
	}

	url, err := store.UploadServicePhoto(context.Background(), 1, 10, []byte("webp-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://beautypro-media.s3.us-east-1.amazonaws.com/services/1/10.webp", url)

	require.NotNil(t, fake.lastInput)
	assert.Equal(t, "beautypro-media", *fake.lastInput.Bucket)
	assert.Equal(t, "services/1/10.webp", *fake.lastInput.Key)
	assert.Equal(t, "image/webp", *fake.lastInput.ContentType)

	body, err := io.ReadAll(fake.lastInput.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("webp-bytes"), body)
}

func TestUploadServicePhoto_PublicBaseOverridesURL(t *testing.T) {
	store := &PhotoStore{
		bucket:     "beautypro-media",
		region:     "us-east-1",
		publicBase: "https://cdn.beautypro.com.br",
		client:     &fakeS3{},
	}

	url, err := store.UploadServicePhoto(context.Background(), 2, 5, []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.beautypro.com.br/services/2/5.webp", url)
}

func TestUploadServicePhoto_PutError(t *testing.T) {
	store := &PhotoStore{
		bucket: "beautypro-media",
		region: "us-east-1",
		client: &fakeS3{err: errors.New("access denied")},
	}

	_, err := store.UploadServicePhoto(context.Background(), 1, 10, []byte("x"))
	assert.ErrorContains(t, err, "access denied")
}

func TestPhotoStore_DisabledWithoutBucket(t *testing.T) {
	store := NewPhotoStore(&config.Config{})

	assert.False(t, store.Enabled())

	_, err := store.UploadServicePhoto(context.Background(), 1, 10, []byte("x"))
	assert.Error(t, err)
}

func TestNewPhotoStore_EnabledWithBucket(t *testing.T) {
	store := NewPhotoStore(&config.Config{
		S3Bucket:    "beautypro-media",
		S3Region:    "us-east-1",
		S3AccessKey: "AKIA...",
		S3SecretKey: "secret",
	})

	assert.True(t, store.Enabled())
}
