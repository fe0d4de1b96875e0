package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"chatbot_backend/config"
	"chatbot_backend/pkg/logging"
)

// Service fetches the dialogue schema from an object store when the
// deployment keeps it in a bucket instead of on local disk.
type Service struct {
	Client      *minio.Client
	Bucket      string
	StorageType string
}

func InitStorageService(cfg *config.Config) (*Service, error) {
	var client *minio.Client
	var err error

	// local vs s3
	switch cfg.StorageType {
	case "minio":
		client, err = minio.New(cfg.BucketEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.BucketAccessID, cfg.BucketAccessKey, ""),
			Secure: cfg.UseSSL,
		})
	case "s3":
		client, err = minio.New("s3.amazonaws.com", &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.BucketAccessID, cfg.BucketAccessKey, ""),
			Secure: cfg.UseSSL,
			Region: cfg.BucketRegion,
		})
	default:
		return nil, fmt.Errorf("unknown STORAGE_TYPE %q", cfg.StorageType)
	}
	if err != nil {
		logging.Logger.Error("failed to init storage service", "error", err)
		return nil, err
	}

	ss := &Service{
		Client:      client,
		Bucket:      cfg.BucketName,
		StorageType: cfg.StorageType,
	}
	logging.Logger.Info("Storage service initialized",
		"type", cfg.StorageType,
		"bucket", cfg.BucketName,
	)
	return ss, nil
}

// FetchObject reads a whole object into memory. The dialogue schema is
// small; there is no need to stream it.
func (ss *Service) FetchObject(ctx context.Context, key string) ([]byte, error) {
	obj, err := ss.Client.GetObject(ctx, ss.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		logging.Logger.Error("failed to fetch object", "key", key, "error", err)
		return nil, err
	}
	defer func() {
		if err := obj.Close(); err != nil {
			logging.Logger.Error("failed to close object reader", "key", key, "error", err)
		}
	}()

	data, err := io.ReadAll(obj)
	if err != nil {
		logging.Logger.Error("failed to read object", "key", key, "error", err)
		return nil, err
	}
	return data, nil
}
