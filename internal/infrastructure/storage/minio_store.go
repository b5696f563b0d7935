package storage

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"gestao_terceiros/internal/usecase/interfaces"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrMissingEndpoint = errors.New("missing DOCSTORE_ENDPOINT")

const presignedURLExpiry = 15 * time.Minute

// MinioStore keeps workflow artifacts (bulletins, contract drafts,
// delivery evidence) in an S3-compatible bucket. References handed to
// callers are plain object names; URLs are minted on demand and
// expire.

type MinioStore struct {
	client   *minio.Client
	bucket   string
	mockMode bool
}

var _ interfaces.IDocumentStore = (*MinioStore)(nil)

func NewMinioStore(ctx context.Context) (*MinioStore, error) {
	bucket := getenvDefault("DOCSTORE_BUCKET", "gestao-terceiros-docs")

	if isDocStoreMockEnabled() {
		log.Printf("[docstore] mock mode enabled")
		return &MinioStore{bucket: bucket, mockMode: true}, nil
	}

	endpoint := strings.TrimSpace(os.Getenv("DOCSTORE_ENDPOINT"))
	if endpoint == "" {
		log.Printf("[docstore] missing DOCSTORE_ENDPOINT")
		return nil, ErrMissingEndpoint
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			getenvDefault("DOCSTORE_ACCESS_KEY", "local"),
			getenvDefault("DOCSTORE_SECRET_KEY", "local"),
			"",
		),
		Secure: strings.EqualFold(os.Getenv("DOCSTORE_USE_SSL"), "true"),
	})
	if err != nil {
		log.Printf("[docstore] failed creating client err=%v", err)
		return nil, err
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("[docstore] bucket check failed bucket=%s err=%v", bucket, err)
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("[docstore] bucket create failed bucket=%s err=%v", bucket, err)
			return nil, err
		}
		log.Printf("[docstore] bucket created bucket=%s", bucket)
	}

	log.Printf("[docstore] client initialized endpoint=%s bucket=%s", endpoint, bucket)
	return &MinioStore{client: client, bucket: bucket}, nil
}

func (s *MinioStore) Upload(ctx context.Context, objectName string, r io.Reader, size int64, contentType string) (string, error) {
	if s != nil && s.mockMode {
		log.Printf("[docstore] mock upload object=%s size=%d", objectName, size)
		return objectName, nil
	}
	if s == nil || s.client == nil {
		return "", errors.New("document store not configured")
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		log.Printf("[docstore] upload failed object=%s err=%v", objectName, err)
		return "", err
	}

	log.Printf("[docstore] uploaded object=%s size=%d", objectName, size)
	return objectName, nil
}

func (s *MinioStore) PresignedURL(ctx context.Context, ref string) (string, error) {
	if s != nil && s.mockMode {
		return "mock://" + s.bucket + "/" + ref, nil
	}
	if s == nil || s.client == nil {
		return "", errors.New("document store not configured")
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, ref, presignedURLExpiry, nil)
	if err != nil {
		log.Printf("[docstore] presign failed object=%s err=%v", ref, err)
		return "", err
	}
	return u.String(), nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isDocStoreMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("DOCSTORE_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
