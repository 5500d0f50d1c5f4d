// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that inventory extensions can be kept in a
// bucket instead of a local folder. Both AWS S3 and self-hosted MinIO work.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (used to publish extensions and fix structure).
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "inventory")
package storage
