package service

import (
	"context"
	"io"
)

// FileStorage abstracts blob storage for cobbler documents, order photos and
// site media. Keys are opaque storage paths.
type FileStorage interface {
	// Upload stores the content under the given key, replacing any previous blob.
	Upload(ctx context.Context, key string, contentType string, content io.Reader) error

	// Download opens the blob stored under the key. The caller closes the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)

	// Delete removes the blob stored under the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
