package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/repository"
	"autorenta-backend/internal/storage"

	"github.com/google/uuid"
)

const (
	uploadURLExpiry = 15 * time.Minute
	// Vehicle photos stay reachable for a week per signed URL; listings are
	// re-rendered far more often than that.
	downloadURLExpiry = 7 * 24 * time.Hour
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type imageStorageService struct {
	vehicleRepo repository.VehicleRepository
	backend     storage.StorageInterface
}

func NewImageStorageService(vehicleRepo repository.VehicleRepository, backend storage.StorageInterface) ImageStorageService {
	return &imageStorageService{
		vehicleRepo: vehicleRepo,
		backend:     backend,
	}
}

// GetUploadURL hands out a presigned PUT URL for a new photo of the vehicle.
// The returned key must be echoed back through ConfirmVehicleImage once the
// upload finished.
func (s *imageStorageService) GetUploadURL(ctx context.Context, vehicleID int32, filename, contentType string) (string, string, error) {
	ext, ok := allowedImageTypes[strings.ToLower(contentType)]
	if !ok {
		return "", "", domain.NewValidationError("unsupported image type %q", contentType)
	}
	if e := strings.ToLower(filepath.Ext(filename)); e == ".jpeg" {
		ext = ".jpg"
	} else if e != "" {
		ext = e
	}

	if _, err := s.vehicleRepo.GetByID(ctx, vehicleID); err != nil {
		return "", "", err
	}

	key := fmt.Sprintf("vehicles/%d/%s%s", vehicleID, uuid.New().String(), ext)
	uploadURL, err := s.backend.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return "", "", &domain.OperationError{Step: "generate upload url", Err: err}
	}
	return uploadURL, key, nil
}

// ConfirmVehicleImage points the vehicle's image URL at the uploaded object.
func (s *imageStorageService) ConfirmVehicleImage(ctx context.Context, vehicleID int32, key string) (*domain.Vehicle, error) {
	if !strings.HasPrefix(key, fmt.Sprintf("vehicles/%d/", vehicleID)) {
		return nil, domain.NewValidationError("image key does not belong to vehicle %d", vehicleID)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	downloadURL, err := s.backend.GeneratePresignedDownloadURL(ctx, key, downloadURLExpiry)
	if err != nil {
		return nil, &domain.OperationError{Step: "generate download url", Err: err}
	}

	vehicle.ImageURL = downloadURL
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return nil, &domain.OperationError{Step: "update vehicle image", Err: err}
	}
	return vehicle, nil
}
