package storage

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const testBaseURL = "https://cdn.example.com/images"

func newTestStore(t *testing.T) (*blobStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return newBlobStore(bucket, testBaseURL+"/", slog.New(slog.NewTextHandler(io.Discard, nil))), bucket
}

func TestBlobStore_UploadReturnsPublicURL(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	url, err := store.Upload(ctx, "listings/ann/my photo.jpg", []byte("jpeg"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, testBaseURL+"/listings/ann/my%20photo.jpg", url)

	data, err := bucket.ReadAll(ctx, "listings/ann/my photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg"), data)

	attrs, err := bucket.Attributes(ctx, "listings/ann/my photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestBlobStore_UploadRequiresPath(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Upload(context.Background(), "/", []byte("x"), "image/png")

	assert.Error(t, err)
}

func TestBlobStore_DeleteByURL(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, bucket.WriteAll(ctx, "listings/L1/a.jpg", []byte("a"), nil))
	require.NoError(t, bucket.WriteAll(ctx, "listings/L1/b c.jpg", []byte("b"), nil))

	require.NoError(t, store.DeleteByURL(ctx, testBaseURL+"/listings/L1/a.jpg"))
	require.NoError(t, store.DeleteByURL(ctx,
		"https://firebasestorage.googleapis.com/v0/b/spotshare.appspot.com/o/listings%2FL1%2Fb%20c.jpg?alt=media&token=t"))

	for _, key := range []string{"listings/L1/a.jpg", "listings/L1/b c.jpg"} {
		exists, err := bucket.Exists(ctx, key)
		require.NoError(t, err)
		assert.False(t, exists, key)
	}

	assert.NoError(t, store.DeleteByURL(ctx, testBaseURL+"/listings/L1/a.jpg"), "already gone is fine")
	assert.Error(t, store.DeleteByURL(ctx, "https://elsewhere.example.com/x.jpg"))
}

func TestBlobStore_DeleteFolder(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()
	for _, key := range []string{"listings/L1/a.jpg", "listings/L1/sub/b.jpg", "listings/L2/c.jpg"} {
		require.NoError(t, bucket.WriteAll(ctx, key, []byte("x"), nil))
	}

	require.NoError(t, store.DeleteFolder(ctx, "listings/L1/"))

	var remaining []string
	it := bucket.List(nil)
	for {
		obj, err := it.Next(ctx)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		remaining = append(remaining, obj.Key)
	}
	assert.Equal(t, []string{"listings/L2/c.jpg"}, remaining)

	assert.NoError(t, store.DeleteFolder(ctx, "listings/missing/"))
}
