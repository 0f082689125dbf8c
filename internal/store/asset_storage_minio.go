package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-model-viewer/internal/config"
	"github.com/MKhiriev/go-model-viewer/internal/logger"
	"github.com/MKhiriev/go-model-viewer/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// objectClient is the subset of the MinIO client used by minioAssetStorage.
type objectClient interface {
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucket, key string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error)
}

// minioClient adapts *minio.Client to objectClient.
type minioClient struct {
	*minio.Client
}

func (c minioClient) GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (io.ReadCloser, error) {
	return c.Client.GetObject(ctx, bucket, key, opts)
}

// minioAssetStorage is the S3-compatible implementation of [AssetStorage].
type minioAssetStorage struct {
	client objectClient
	bucket string
	logger *logger.Logger
}

// NewMinioAssetStorage connects to the object storage endpoint and makes sure
// the bucket exists.
func NewMinioAssetStorage(ctx context.Context, cfg config.Assets, log *logger.Logger) (AssetStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		log.Err(err).Str("func", "NewMinioAssetStorage").Msg("error creating object storage client")
		return nil, fmt.Errorf("error creating object storage client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		log.Err(err).Str("func", "NewMinioAssetStorage").Msg("error checking bucket")
		return nil, fmt.Errorf("error checking bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("error creating bucket %s: %w", cfg.Bucket, err)
		}
		log.Info().Str("func", "NewMinioAssetStorage").Str("bucket", cfg.Bucket).Msg("created bucket")
	}

	return &minioAssetStorage{
		client: minioClient{client},
		bucket: cfg.Bucket,
		logger: log,
	}, nil
}

func (s *minioAssetStorage) PutAsset(ctx context.Context, asset models.Asset) error {
	defer asset.Body.Close()

	_, err := s.client.PutObject(ctx, s.bucket, asset.Key, asset.Body, asset.Size, minio.PutObjectOptions{
		ContentType: asset.ContentType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "minioAssetStorage.PutAsset").Str("key", asset.Key).Msg("failed to upload asset")
		return fmt.Errorf("failed to upload asset: %w", err)
	}

	return nil
}

func (s *minioAssetStorage) GetAsset(ctx context.Context, key string) (models.Asset, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return models.Asset{}, ErrAssetNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "minioAssetStorage.GetAsset").Str("key", key).Msg("failed to stat asset")
		return models.Asset{}, fmt.Errorf("failed to stat asset: %w", err)
	}

	body, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "minioAssetStorage.GetAsset").Str("key", key).Msg("failed to get asset")
		return models.Asset{}, fmt.Errorf("failed to get asset: %w", err)
	}

	return models.Asset{
		Key:         key,
		ContentType: info.ContentType,
		Size:        info.Size,
		Body:        body,
	}, nil
}
