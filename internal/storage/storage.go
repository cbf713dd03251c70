// Package storage keeps gallery image bytes in a local directory or an S3-compatible bucket.
package storage

import (
	"context"
	"strings"

	"educator-site/internal/event"

	"github.com/google/uuid"
)

var log = event.Log

// ObjectStorage saves and removes image objects and knows their public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
	Delete(ctx context.Context, key string) error
}

// GalleryKey returns a new unique object key such as "gallery/<uuid>.jpg".
func GalleryKey(ext string) string {
	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	if ext == "" {
		ext = "jpg"
	}
	return "gallery/" + uuid.New().String() + "." + ext
}

func joinURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
