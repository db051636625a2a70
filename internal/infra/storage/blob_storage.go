// Package storage implements the FileStorage domain service on top of
// gocloud.dev blob buckets. The bucket URL decides the backend: file:// in
// development, gs:// in production.
package storage

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Registered bucket backends.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"cordonnier/config"
	"cordonnier/internal/domain/service"
)

// blobStorage stores documents, order photos and site media in a single bucket.
type blobStorage struct {
	bucket *blob.Bucket
}

// NewBlobStorage opens the configured bucket.
func NewBlobStorage(ctx context.Context, cfg *config.Config) (service.FileStorage, func() error, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, nil, errors.New("storage bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	storage := &blobStorage{bucket: bucket}

	return storage, bucket.Close, nil
}

// NewBlobStorageFromBucket wraps an already opened bucket, used by tests.
func NewBlobStorageFromBucket(bucket *blob.Bucket) service.FileStorage {
	return &blobStorage{bucket: bucket}
}

// Upload stores the content under the given key, replacing any previous blob.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, content io.Reader) error {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return errors.Wrapf(err, "open writer for %s", key)
	}

	if _, err := io.Copy(writer, content); err != nil {
		_ = writer.Close()

		return errors.Wrapf(err, "write blob %s", key)
	}

	return errors.Wrapf(writer.Close(), "close writer for %s", key)
}

// Download opens the blob stored under the key. The caller closes the reader.
func (s *blobStorage) Download(ctx context.Context, key string) (io.ReadCloser, string, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "open reader for %s", key)
	}

	return reader, reader.ContentType(), nil
}

// Delete removes the blob stored under the key. Deleting a missing key is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "delete blob %s", key)
	}

	return nil
}
