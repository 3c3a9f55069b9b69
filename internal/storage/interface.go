package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface defines the interface for vehicle image storage backends.
// Two implementations exist: a Firebase/GCS backend and a local-filesystem
// mock for development.
type StorageInterface interface {
	// GeneratePresignedUploadURL generates a presigned URL for uploading.
	GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error)

	// GeneratePresignedDownloadURL generates a presigned URL for downloading.
	GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// SaveFile saves a file. Only needed by the mock implementation, whose
	// presigned URLs point at our own HTTP server.
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading. Only needed by the mock implementation.
	ReadFile(key string) (io.ReadCloser, error)
}
