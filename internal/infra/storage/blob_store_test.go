package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
)

func newMemStore(t *testing.T) *blobImageStore {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	return &blobImageStore{bucket: bucket, bucketURL: "mem://"}
}

func TestBlobImageStore_SaveAndDelete(t *testing.T) {
	store := newMemStore(t)
	ctx := context.Background()

	url, err := store.Save(ctx, "chat/abc/photo.jpg", "image/jpeg", strings.NewReader("fake image bytes"))
	require.NoError(t, err)
	assert.Equal(t, "mem://chat/abc/photo.jpg", url)

	data, err := store.bucket.ReadAll(ctx, "chat/abc/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, store.Delete(ctx, "chat/abc/photo.jpg"))

	exists, err := store.bucket.Exists(ctx, "chat/abc/photo.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStore_DeleteMissingKeyIsNoError(t *testing.T) {
	store := newMemStore(t)

	assert.NoError(t, store.Delete(context.Background(), "chat/never/existed.jpg"))
}
