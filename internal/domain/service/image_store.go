package service

import (
	"context"
)

// ImageStore defines the interface for listing image storage.
type ImageStore interface {
	// Upload stores an object at path and returns its public URL.
	Upload(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// DeleteByURL removes the object a public URL points to.
	DeleteByURL(ctx context.Context, url string) error

	// DeleteFolder removes every object under the prefix.
	DeleteFolder(ctx context.Context, prefix string) error
}
