package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// placeholder is the object written to make an empty prefix visible.
const placeholder = ".keep"

// CheckStructure returns the required prefixes missing from the bucket.
// Only the extension prefix is required today.
func CheckStructure(ctx context.Context, client storage.Client, bucket, prefix string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	folder := normalize(prefix)
	opts := minio.ListObjectsOptions{
		Prefix:    folder,
		Recursive: false,
		MaxKeys:   1,
	}

	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", folder, obj.Err)
		}
		return []string{}, nil
	}

	return []string{folder}, nil
}

// FixStructure creates a placeholder object under every missing prefix.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, folder := range missing {
		key := normalize(folder) + placeholder

		_, err := client.PutObject(ctx, bucket, key, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("folder", folder), zap.Error(err))
			return fmt.Errorf("failed to create %s: %w", folder, err)
		}
		logger.Info("Created missing folder", zap.String("folder", folder))
	}
	return nil
}

func normalize(prefix string) string {
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		return prefix + "/"
	}
	return prefix
}
