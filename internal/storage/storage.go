package storage

import (
	"context"
	"errors"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// MaxObjectSize caps how much of an uploaded object is read back into memory.
const MaxObjectSize = 10 << 20

var (
	ErrObjectNotFound = errors.New("object not found in storage")
	ErrObjectTooLarge = errors.New("object exceeds size limit")
)

// Object is a downloaded object body with its content type.
type Object struct {
	Data        []byte
	ContentType string
}

// FileStorage defines the object storage operations used for equipment scans.
type FileStorage interface {
	// GeneratePresignedUploadURL creates a temporary URL that allows PUT requests
	// for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GetObject downloads an object, up to MaxObjectSize bytes.
	GetObject(ctx context.Context, objectKey string) (*Object, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
