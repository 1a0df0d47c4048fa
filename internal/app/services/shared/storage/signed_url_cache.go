package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"omerald-service/internal/app/contracts"
	"omerald-service/internal/pkg/constvars"
	"omerald-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// SignedURLCache resolves raw attachment URLs into access-ready ones for a
// single viewing session. Already-signed and non-cloud URLs pass through;
// cloud storage URLs get a fresh pre-signed URL from the storage backend.
// URLs that fail to resolve land in a missing set so one session never
// retries them; callers render a retry affordance instead.
//
// One cache instance lives for one view request. Nothing is persisted
// across sessions.
type SignedURLCache struct {
	storage contracts.Storage
	limiter *rate.Limiter
	log     *zap.Logger
	expiry  time.Duration

	mu       sync.Mutex
	resolved map[string]string
	missing  map[string]struct{}
}

func NewSignedURLCache(storage contracts.Storage, limiter *rate.Limiter, log *zap.Logger, expiry time.Duration) *SignedURLCache {
	return &SignedURLCache{
		storage:  storage,
		limiter:  limiter,
		log:      log,
		expiry:   expiry,
		resolved: make(map[string]string),
		missing:  make(map[string]struct{}),
	}
}

// Resolve returns the access-ready URL for rawURL, or an error after
// recording it as missing. A missing URL is a degraded state, never fatal
// for the whole view.
func (c *SignedURLCache) Resolve(ctx context.Context, rawURL string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", c.markMissing(rawURL, exceptions.ErrStorageKeyExtraction(errors.New("empty url")))
	}

	c.mu.Lock()
	if cached, ok := c.resolved[rawURL]; ok {
		c.mu.Unlock()
		return cached, nil
	}
	if _, ok := c.missing[rawURL]; ok {
		c.mu.Unlock()
		return "", exceptions.ErrStorageKeyExtraction(fmt.Errorf("url already marked missing: %s", rawURL))
	}
	c.mu.Unlock()

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", c.markMissing(rawURL, exceptions.ErrStorageKeyExtraction(err))
	}

	if isAlreadySigned(parsed) {
		c.store(rawURL, rawURL)
		return rawURL, nil
	}

	if !isCloudStorageURL(parsed) {
		// Directly fetchable; no signing needed and nothing to cache.
		return rawURL, nil
	}

	bucket, objectKey, err := extractObjectKey(parsed)
	if err != nil {
		return "", c.markMissing(rawURL, exceptions.ErrStorageKeyExtraction(err))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", c.markMissing(rawURL, exceptions.ErrMinioPresignObject(err, objectKey))
	}

	signedURL, err := c.storage.GetObjectUrlWithExpiryTime(ctx, bucket, objectKey, c.expiry)
	if err != nil {
		return "", c.markMissing(rawURL, err)
	}

	c.store(rawURL, signedURL)
	return signedURL, nil
}

// ResolveAll fans the URLs out to unordered parallel resolutions and waits
// for all of them. Failed URLs map to the empty string.
func (c *SignedURLCache) ResolveAll(ctx context.Context, rawURLs []string) map[string]string {
	results := make([]string, len(rawURLs))

	var wg sync.WaitGroup
	for i, rawURL := range rawURLs {
		wg.Add(1)
		go func(i int, rawURL string) {
			defer wg.Done()
			resolved, err := c.Resolve(ctx, rawURL)
			if err != nil {
				return
			}
			results[i] = resolved
		}(i, rawURL)
	}
	wg.Wait()

	resolved := make(map[string]string, len(rawURLs))
	for i, rawURL := range rawURLs {
		resolved[rawURL] = results[i]
	}
	return resolved
}

// IsMissing reports whether the URL failed resolution in this session.
func (c *SignedURLCache) IsMissing(rawURL string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.missing[rawURL]
	return ok
}

func (c *SignedURLCache) store(rawURL, resolvedURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved[rawURL] = resolvedURL
}

func (c *SignedURLCache) markMissing(rawURL string, err error) error {
	c.mu.Lock()
	c.missing[rawURL] = struct{}{}
	c.mu.Unlock()
	c.log.Warn("signed url resolution failed",
		zap.String("url", rawURL),
		zap.Error(err),
	)
	return err
}

// isAlreadySigned detects the query parameters cloud storage puts on
// pre-signed URLs.
func isAlreadySigned(parsed *url.URL) bool {
	query := parsed.Query()
	for _, marker := range []string{
		constvars.SignedURLMarkerAmzAlgorithm,
		constvars.SignedURLMarkerAmzSignature,
		constvars.SignedURLMarkerAccessKeyID,
		constvars.SignedURLMarkerSignature,
	} {
		if query.Get(marker) != "" {
			return true
		}
	}
	return false
}

// isCloudStorageURL matches the storage hosts this product has written to
// over time.
func isCloudStorageURL(parsed *url.URL) bool {
	host := strings.ToLower(parsed.Host)
	return strings.Contains(host, "amazonaws.com") || strings.HasPrefix(host, "s3.") || strings.Contains(host, ".s3.")
}

// extractObjectKey pulls the bucket and percent-decoded object key out of
// both URL forms: virtual-hosted (bucket.s3.region.host/key) and path-style
// (s3.region.host/bucket/key).
func extractObjectKey(parsed *url.URL) (string, string, error) {
	host := strings.ToLower(parsed.Host)
	path := strings.TrimPrefix(parsed.EscapedPath(), "/")
	if path == "" {
		return "", "", fmt.Errorf("no object path in url %s", parsed.String())
	}

	var bucket, key string
	if idx := strings.Index(host, ".s3."); idx > 0 {
		bucket = parsed.Host[:idx]
		key = path
	} else {
		segments := strings.SplitN(path, "/", 2)
		if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
			return "", "", fmt.Errorf("cannot split bucket and key from url %s", parsed.String())
		}
		bucket = segments[0]
		key = segments[1]
	}

	decodedKey, err := url.PathUnescape(key)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(decodedKey) == "" {
		return "", "", fmt.Errorf("empty object key in url %s", parsed.String())
	}
	return bucket, decodedKey, nil
}
