// Package storage keeps generated documents in a gocloud blob bucket.
package storage

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"foundmoney/config"
	"foundmoney/internal/domain/service"
	"foundmoney/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const defaultSignedURLTTL = time.Hour

// ErrNotConfigured is returned by Put when no bucket is configured.
var ErrNotConfigured = errors.New("document storage is not configured")

// BlobStore implements service.DocumentStore on a gocloud bucket.
type BlobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	signedURLTTL  time.Duration
}

// NewBlobStore wraps an open bucket. Download URLs are signed when the
// driver supports it and built from publicBaseURL otherwise.
func NewBlobStore(bucket *blob.Bucket, publicBaseURL string, signedURLTTL time.Duration) *BlobStore {
	if signedURLTTL <= 0 {
		signedURLTTL = defaultSignedURLTTL
	}

	return &BlobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		signedURLTTL:  signedURLTTL,
	}
}

// Params defines the parameters required for the document store
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New opens the configured bucket URL (file://, gs://, s3://, mem://).
func New(params Params) (service.DocumentStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Warn("document storage not configured, uploads are disabled")

		return NewBlobStore(nil, "", 0), nil
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, cfg.PublicBaseURL, cfg.SignedURLTTL), nil
}

// Put implements service.DocumentStore. The returned URL is empty when the
// bucket can neither sign nor be reached through a public base URL.
func (s *BlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if s.bucket == nil {
		return "", ErrNotConfigured
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "write %s", key)
	}

	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: s.signedURLTTL})
	switch {
	case err == nil:
		return signed, nil
	case gcerrors.Code(err) != gcerrors.Unimplemented:
		return "", errors.Wrapf(err, "sign %s", key)
	case s.publicBaseURL != "":
		return s.publicBaseURL + "/" + key, nil
	default:
		return "", nil
	}
}
