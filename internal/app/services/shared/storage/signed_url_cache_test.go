package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type fakeStorage struct {
	mu     sync.Mutex
	calls  []string
	failOn map[string]error
}

func (f *fakeStorage) UploadFile(ctx context.Context, file io.Reader, fileHeader *multipart.FileHeader, bucketName string) (string, error) {
	return "", errors.New("not used")
}

func (f *fakeStorage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, bucketName+"/"+objectName)
	if err, ok := f.failOn[objectName]; ok {
		return "", err
	}
	return fmt.Sprintf("https://signed.test/%s/%s", bucketName, objectName), nil
}

func (f *fakeStorage) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestCache(storage *fakeStorage) *SignedURLCache {
	return NewSignedURLCache(storage, rate.NewLimiter(rate.Inf, 1), zap.NewNop(), time.Hour)
}

func TestSignedURLCache_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("already signed URL passes through and is cached", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)
		signed := "https://bucket.s3.amazonaws.com/key.pdf?X-Amz-Signature=abc"

		resolved, err := cache.Resolve(ctx, signed)

		require.NoError(t, err)
		assert.Equal(t, signed, resolved)
		assert.Zero(t, storage.callCount(), "signer must not run for signed URLs")
	})

	t.Run("legacy AWSAccessKeyId marker counts as signed", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)
		signed := "https://bucket.s3.amazonaws.com/key.pdf?AWSAccessKeyId=AKIA123&Expires=99"

		resolved, err := cache.Resolve(ctx, signed)

		require.NoError(t, err)
		assert.Equal(t, signed, resolved)
		assert.Zero(t, storage.callCount())
	})

	t.Run("non cloud URL passes through unsigned", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)

		resolved, err := cache.Resolve(ctx, "https://cdn.example.com/report.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/report.pdf", resolved)
		assert.Zero(t, storage.callCount())
	})

	t.Run("virtual hosted style extracts bucket and key", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)

		resolved, err := cache.Resolve(ctx, "https://reports.s3.ap-south-1.amazonaws.com/2024/scan.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://signed.test/reports/2024/scan.pdf", resolved)
	})

	t.Run("path style extracts bucket and key", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)

		resolved, err := cache.Resolve(ctx, "https://s3.amazonaws.com/reports/2024/scan.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://signed.test/reports/2024/scan.pdf", resolved)
	})

	t.Run("percent encoded keys are decoded", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)

		resolved, err := cache.Resolve(ctx, "https://reports.s3.amazonaws.com/blood%20test.pdf")

		require.NoError(t, err)
		assert.Equal(t, "https://signed.test/reports/blood test.pdf", resolved)
	})

	t.Run("repeat resolution hits the cache", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)
		rawURL := "https://reports.s3.amazonaws.com/scan.pdf"

		first, err := cache.Resolve(ctx, rawURL)
		require.NoError(t, err)
		second, err := cache.Resolve(ctx, rawURL)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, storage.callCount(), "second resolve must not call the signer")
	})

	t.Run("failed URL lands in the missing set and is not retried", func(t *testing.T) {
		storage := &fakeStorage{failOn: map[string]error{"broken.pdf": errors.New("boom")}}
		cache := newTestCache(storage)
		rawURL := "https://reports.s3.amazonaws.com/broken.pdf"

		_, err := cache.Resolve(ctx, rawURL)
		require.Error(t, err)
		assert.True(t, cache.IsMissing(rawURL))

		_, err = cache.Resolve(ctx, rawURL)
		require.Error(t, err)
		assert.Equal(t, 1, storage.callCount(), "missing URLs must not be retried in the same session")
	})

	t.Run("empty URL is missing", func(t *testing.T) {
		cache := newTestCache(&fakeStorage{})

		_, err := cache.Resolve(ctx, "  ")

		require.Error(t, err)
	})

	t.Run("cloud URL without object path is missing", func(t *testing.T) {
		storage := &fakeStorage{}
		cache := newTestCache(storage)

		_, err := cache.Resolve(ctx, "https://s3.amazonaws.com/")

		require.Error(t, err)
		assert.Zero(t, storage.callCount())
	})
}

func TestSignedURLCache_ResolveAll(t *testing.T) {
	ctx := context.Background()
	storage := &fakeStorage{failOn: map[string]error{"broken.pdf": errors.New("boom")}}
	cache := newTestCache(storage)

	urls := []string{
		"https://reports.s3.amazonaws.com/a.pdf",
		"https://reports.s3.amazonaws.com/broken.pdf",
		"https://cdn.example.com/direct.jpg",
	}

	resolved := cache.ResolveAll(ctx, urls)

	assert.Len(t, resolved, 3)
	assert.Equal(t, "https://signed.test/reports/a.pdf", resolved[urls[0]])
	assert.Equal(t, "", resolved[urls[1]], "failed URLs resolve to empty")
	assert.Equal(t, urls[2], resolved[urls[2]])
	assert.True(t, cache.IsMissing(urls[1]))
}
