package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// FirebaseStorageService stores vehicle images in the project's default
// Firebase/GCS bucket and hands out V4 signed URLs.
type FirebaseStorageService struct {
	bucket *gcs.BucketHandle
}

// NewFirebaseStorageService connects to the Firebase project's storage bucket.
// credentialsFile may be empty when running with ambient credentials.
func NewFirebaseStorageService(ctx context.Context, credentialsFile, bucket string) (*FirebaseStorageService, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucket}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	handle, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open default bucket: %w", err)
	}

	return &FirebaseStorageService{bucket: handle}, nil
}

func (f *FirebaseStorageService) GeneratePresignedUploadURL(ctx context.Context, key string, contentType string, expiresIn time.Duration) (string, error) {
	return f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:      gcs.SigningSchemeV4,
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(expiresIn),
	})
}

func (f *FirebaseStorageService) GeneratePresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	return f.bucket.SignedURL(key, &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(expiresIn),
	})
}

func (f *FirebaseStorageService) DeleteFile(ctx context.Context, key string) error {
	err := f.bucket.Object(key).Delete(ctx)
	if errors.Is(err, gcs.ErrObjectNotExist) {
		return nil
	}
	return err
}

// SaveFile is only meaningful for the mock backend; uploads to Firebase go
// directly through the signed URL.
func (f *FirebaseStorageService) SaveFile(key string, reader io.Reader) error {
	return errors.New("direct save not supported by firebase storage")
}

func (f *FirebaseStorageService) ReadFile(key string) (io.ReadCloser, error) {
	return nil, errors.New("direct read not supported by firebase storage")
}
