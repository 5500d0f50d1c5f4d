package source

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"inventory-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// BucketSource reads definitions from objects under a bucket prefix.
type BucketSource struct {
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
}

// NewBucketSource creates a source listing prefix in bucket.
func NewBucketSource(client storage.Client, bucket, prefix string, logger *zap.Logger) *BucketSource {
	return &BucketSource{client: client, bucket: bucket, prefix: prefix, logger: logger}
}

// Discover implements Source. Listing is done once; only matching objects are fetched.
func (s *BucketSource) Discover(ctx context.Context) ([]Document, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	opts := minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	}

	var keys []string
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list extensions: %w", obj.Err)
		}
		// Folder placeholders end with a slash
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if _, err := FormatFromName(obj.Key); err != nil {
			continue
		}
		keys = append(keys, obj.Key)
	}
	sort.Strings(keys)

	docs := make([]Document, 0, len(keys))
	for _, key := range keys {
		s.logger.Info("Located extension object", zap.String("key", key))

		data, err := s.read(ctx, key)
		if err != nil {
			return nil, err
		}

		format, _ := FormatFromName(key)
		docs = append(docs, Document{Name: key, Format: format, Data: data})
	}

	return docs, nil
}

func (s *BucketSource) read(ctx context.Context, key string) ([]byte, error) {
	reader, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get extension object %s: %w", key, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read extension object %s: %w", key, err)
	}
	return data, nil
}
