// Package storage implements chat image storage on a gocloud.dev blob bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"nearnow/config"
	"nearnow/internal/domain/lifecycle"
	"nearnow/internal/domain/service"
	"nearnow/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// blobImageStore implements service.ImageStore on a gocloud.dev bucket, so
// the same code serves local disk in development and GCS in production.
type blobImageStore struct {
	bucket    *blob.Bucket
	bucketURL string
}

// NewImageStore opens the configured bucket and manages its lifecycle.
func NewImageStore(params Params) (service.ImageStore, error) {
	if params.Config.Blob == nil || params.Config.Blob.BucketURL == "" {
		return nil, errors.New("blob bucket URL is not configured")
	}

	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Blob.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Blob image store initialized",
		slog.String("bucket_url", params.Config.Blob.BucketURL),
	)

	return &blobImageStore{
		bucket:    bucket,
		bucketURL: params.Config.Blob.BucketURL,
	}, nil
}

// Save writes the image under key and returns the URL recorded as message content.
func (s *blobImageStore) Save(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	return s.imageURL(key), nil
}

// Delete removes a stored image. Missing keys are not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// imageURL derives the stable URL stored as the image message's content.
func (s *blobImageStore) imageURL(key string) string {
	base := strings.TrimSuffix(s.bucketURL, "/")

	return base + "/" + key
}
