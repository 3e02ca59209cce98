package storage

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "shop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// Smallest valid PNG signature plus IHDR chunk header, enough for content sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)

func newTestStore(t *testing.T, maxSize int64) *BucketStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBucketStore(bucket, "https://cdn.example.com/", maxSize, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBucketStore_UploadDataURI(t *testing.T) {
	store := newTestStore(t, 1024)
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)

	url, err := store.Upload(context.Background(), uri)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/products/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// Same bytes, same key.
	again, err := store.Upload(context.Background(), uri)
	require.NoError(t, err)
	assert.Equal(t, url, again)

	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	stored, err := store.bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, stored)
}

func TestBucketStore_UploadURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))
	defer srv.Close()

	store := newTestStore(t, 1024)

	url, err := store.Upload(context.Background(), srv.URL+"/photo.png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, ".png"))
}

func TestBucketStore_Rejections(t *testing.T) {
	store := newTestStore(t, 16)

	tests := []struct {
		name   string
		source string
	}{
		{name: "plain path", source: "/tmp/image.png"},
		{name: "not base64", source: "data:image/png,raw"},
		{name: "too large", source: "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)},
		{name: "not an image", source: "data:text/plain;base64," + base64.StdEncoding.EncodeToString([]byte("hello"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Upload(context.Background(), tt.source)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
		})
	}
}
