package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockStorageService implements image storage on the local filesystem. It is
// meant for development without a Firebase project; the "presigned" URLs it
// hands out point back at this server's own upload/download endpoints.
type MockStorageService struct {
	baseURL   string // server URL (e.g., "http://localhost:8080")
	imagesDir string
}

// NewMockStorageService creates a new mock storage service
func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	imagesDir := filepath.Join(uploadsDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &MockStorageService{
		baseURL:   baseURL,
		imagesDir: imagesDir,
	}, nil
}

// GeneratePresignedUploadURL generates a mock upload URL pointing to the server
func (m *MockStorageService) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	uploadToken := uuid.New().String()
	// The key rides in the query parameter so the upload handler knows where
	// to save the body.
	return fmt.Sprintf("%s/api/v1/upload/%s?key=%s", m.baseURL, uploadToken, url.QueryEscape(key)), nil
}

// GeneratePresignedDownloadURL generates a mock download URL pointing to the server
func (m *MockStorageService) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return fmt.Sprintf("%s/api/v1/download?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

// DeleteFile removes a file from the local filesystem
func (m *MockStorageService) DeleteFile(ctx context.Context, key string) error {
	path, err := m.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SaveFile writes an uploaded body under the images directory
func (m *MockStorageService) SaveFile(key string, reader io.Reader) error {
	path, err := m.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile opens a stored file
func (m *MockStorageService) ReadFile(key string) (io.ReadCloser, error) {
	path, err := m.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// resolve maps a storage key to a filesystem path, rejecting traversal.
func (m *MockStorageService) resolve(key string) (string, error) {
	clean := filepath.Clean("/" + key)
	if strings.Contains(clean, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(m.imagesDir, clean), nil
}
