// Package storage implements listing image storage on gocloud.dev/blob.
package storage

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"spotshare/config"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const imageCacheControl = "public, max-age=31536000"

// firebaseDownloadPath marks download URLs of the form
// https://firebasestorage.googleapis.com/v0/b/<bucket>/o/<escaped key>.
const firebaseDownloadPath = "/o/"

type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
	logger  *slog.Logger
}

// Params holds dependencies for the image store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore opens the configured bucket (gs://, file:// or mem://) and
// closes it on stop.
func NewImageStore(params Params) (service.ImageStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = cfg.BucketURL
	}

	return newBlobStore(bucket, baseURL, params.Logger), nil
}

func newBlobStore(bucket *blob.Bucket, baseURL string, logger *slog.Logger) *blobStore {
	return &blobStore{
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger,
	}
}

// Upload writes the object and returns its public URL.
func (s *blobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return "", errors.New("object path is required")
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: imageCacheControl,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	return s.objectURL(key), nil
}

// DeleteByURL removes the object a public URL points to. A missing object is not an error.
func (s *blobStore) DeleteByURL(ctx context.Context, rawURL string) error {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return err
	}

	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", key)
	}

	return nil
}

// DeleteFolder removes every object under the prefix and reports all failures.
func (s *blobStore) DeleteFolder(ctx context.Context, prefix string) error {
	var errs []error
	deleted := 0

	it := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	for {
		obj, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to list %s", prefix))

			break
		}
		if obj.IsDir {
			continue
		}

		if err := s.bucket.Delete(ctx, obj.Key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
			errs = append(errs, errors.Wrapf(err, "failed to delete %s", obj.Key))

			continue
		}
		deleted++
	}

	s.logger.Debug("Image folder deleted", slog.String("prefix", prefix), slog.Int("deleted", deleted), slog.Int("failed", len(errs)))

	return errors.Join(errs...)
}

func (s *blobStore) objectURL(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}

	return s.baseURL + "/" + strings.Join(segments, "/")
}

// keyFromURL accepts URLs under the public base and Firebase download URLs.
func (s *blobStore) keyFromURL(rawURL string) (string, error) {
	if rest, ok := strings.CutPrefix(rawURL, s.baseURL+"/"); ok {
		rest, _, _ = strings.Cut(rest, "?")
		key, err := url.PathUnescape(rest)
		if err != nil {
			return "", errors.Wrapf(err, "invalid object url %s", rawURL)
		}

		return key, nil
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "invalid object url %s", rawURL)
	}
	if _, escaped, ok := strings.Cut(u.EscapedPath(), firebaseDownloadPath); ok {
		key, err := url.PathUnescape(escaped)
		if err != nil {
			return "", errors.Wrapf(err, "invalid object url %s", rawURL)
		}

		return key, nil
	}

	return "", errors.Errorf("url %s does not belong to this bucket", rawURL)
}
