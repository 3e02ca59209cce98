// Package storage hosts product images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"encoding/base64"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"shop/config"
	domainerrors "shop/internal/domain/errors"
	"shop/internal/domain/service"
	"shop/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

const (
	keyPrefix           = "products/"
	defaultMaxImageSize = 5 << 20
	fetchTimeout        = 15 * time.Second
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// BucketStore uploads images to a bucket under a content-addressed key.
type BucketStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	maxSize       int64
	client        *http.Client
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on stop.
func New(params Params) (service.AssetStore, error) {
	assets := params.Config.Assets
	if assets == nil || assets.BucketURL == "" {
		return nil, errors.New("assets.bucketUrl is required")
	}

	bucket, err := blob.OpenBucket(context.Background(), assets.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", assets.BucketURL)
	}

	params.Append(fx.StopHook(bucket.Close))

	return NewBucketStore(bucket, assets.PublicBaseURL, assets.MaxImageSize, params.Logger), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, maxSize int64, logger *slog.Logger) *BucketStore {
	if maxSize <= 0 {
		maxSize = defaultMaxImageSize
	}

	return &BucketStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxSize:       maxSize,
		client:        &http.Client{Timeout: fetchTimeout},
		logger:        logger,
	}
}

// Upload accepts a data URI or an http(s) URL and stores the image at
// products/<sha256>.<ext>. Re-uploading the same bytes is a no-op.
func (s *BucketStore) Upload(ctx context.Context, source string) (string, error) {
	data, contentType, err := s.load(ctx, source)
	if err != nil {
		return "", err
	}

	ext, ok := extensions[contentType]
	if !ok {
		return "", domainerrors.ErrInvalidImage.WithDetails("unsupported content type " + contentType)
	}

	key := keyPrefix + util.ContentChecksum(data) + "." + ext

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to check image")
	}

	if !exists {
		if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
			ContentType:  contentType,
			CacheControl: "public, max-age=31536000, immutable",
		}); err != nil {
			return "", errors.Wrap(err, "failed to write image")
		}

		s.logger.DebugContext(ctx, "Image stored",
			slog.String("key", key),
			slog.String("size", util.FormatBytes(int64(len(data)))),
		)
	}

	return s.publicBaseURL + "/" + key, nil
}

func (s *BucketStore) load(ctx context.Context, source string) ([]byte, string, error) {
	switch {
	case strings.HasPrefix(source, "data:"):
		return s.decodeDataURI(source)
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return s.fetch(ctx, source)
	default:
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("image must be a data URI or an http(s) URL")
	}
}

// decodeDataURI handles data:<mime>;base64,<payload>.
func (s *BucketStore) decodeDataURI(source string) ([]byte, string, error) {
	header, payload, found := strings.Cut(strings.TrimPrefix(source, "data:"), ",")
	if !found || !strings.HasSuffix(header, ";base64") {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("only base64 data URIs are supported")
	}

	if int64(base64.StdEncoding.DecodedLen(len(payload))) > s.maxSize+2 {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("image exceeds " + util.FormatBytes(s.maxSize))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("malformed base64 payload")
	}

	if int64(len(data)) > s.maxSize {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("image exceeds " + util.FormatBytes(s.maxSize))
	}

	return data, sniff(data, strings.TrimSuffix(header, ";base64")), nil
}

func (s *BucketStore) fetch(ctx context.Context, source string) ([]byte, string, error) {
	if _, err := url.ParseRequestURI(source); err != nil {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails("malformed image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create image request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, "", domainerrors.ErrImageUploadFailed.WithDetails("could not fetch image")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", domainerrors.ErrImageUploadFailed.WithDetails("image source responded " + resp.Status)
	}

	data, err := util.ReadLimited(resp.Body, s.maxSize)
	if err != nil {
		return nil, "", domainerrors.ErrInvalidImage.WithDetails(err.Error())
	}

	return data, sniff(data, resp.Header.Get("Content-Type")), nil
}

// sniff prefers the declared type when it is a known image type, else detects it from content.
func sniff(data []byte, declared string) string {
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil {
		if _, ok := extensions[mediaType]; ok {
			return mediaType
		}
	}

	detected, _, _ := mime.ParseMediaType(http.DetectContentType(data))

	return detected
}
