package storage

import (
	"context"
	"time"
)

// Storage defines the interface for object storage operations.
type Storage interface {
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// GetPresignedPutURL generates a pre-signed URL for uploading an object.
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
}

// Ensure S3Client implements Storage interface
var _ Storage = (*S3Client)(nil)
