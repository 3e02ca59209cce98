package service

import "context"

// AssetStore hosts product images.
type AssetStore interface {
	// Upload stores an image given as a data URI or an http(s) URL and returns its public URL.
	Upload(ctx context.Context, source string) (string, error)
}
