package document

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/rcastrogi/advocacia-sub002/config"
	"github.com/rcastrogi/advocacia-sub002/pkg/logger"
)

// Uploader stores rendered petition documents in a MinIO bucket.
type Uploader struct {
	client *minio.Client
	bucket string
	log    logger.LoggerI
}

// NewUploader connects to MinIO and ensures the bucket exists. Returns nil
// without error when no endpoint is configured, callers treat a nil Uploader
// as "object storage disabled".
func NewUploader(ctx context.Context, cfg config.Config, log logger.LoggerI) (*Uploader, error) {
	if cfg.MinioHost == "" {
		return nil, nil
	}

	client, err := minio.New(cfg.MinioHost, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKeyID, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, err
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &Uploader{
		client: client,
		bucket: cfg.MinioBucket,
		log:    log,
	}, nil
}

// Upload stores the rendered body under a generated object key and returns
// the key.
func (u *Uploader) Upload(ctx context.Context, body string) (string, error) {
	key := uuid.NewString() + ".txt"

	reader := strings.NewReader(body)

	_, err := u.client.PutObject(ctx, u.bucket, key, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return "", err
	}

	u.log.Info("document uploaded", logger.String("bucket", u.bucket), logger.String("key", key))

	return key, nil
}
