package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_UploadDownloadDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorageFromBucket(bucket)

	err := storage.Upload(ctx, "documents/abc/id_card_front", "image/png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)

	reader, contentType, err := storage.Download(ctx, "documents/abc/id_card_front")
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/png", contentType)
	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(content))

	require.NoError(t, storage.Delete(ctx, "documents/abc/id_card_front"))

	_, _, err = storage.Download(ctx, "documents/abc/id_card_front")
	assert.Error(t, err)
}

func TestBlobStorage_UploadReplaces(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorageFromBucket(bucket)

	require.NoError(t, storage.Upload(ctx, "media/hero/0", "image/jpeg", strings.NewReader("v1")))
	require.NoError(t, storage.Upload(ctx, "media/hero/0", "image/jpeg", strings.NewReader("v2")))

	reader, _, err := storage.Download(ctx, "media/hero/0")
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(content))
}

func TestBlobStorage_DeleteMissingKeyIsNoop(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorageFromBucket(bucket)

	assert.NoError(t, storage.Delete(ctx, "never/existed"))
}
