package service

import (
	"context"
	"strings"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
}

func NewVehicleService(vehicleRepo repository.VehicleRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo}
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if strings.TrimSpace(v.Brand) == "" || strings.TrimSpace(v.Model) == "" {
		return domain.NewValidationError("brand and model are required")
	}
	if strings.TrimSpace(v.Plate) == "" {
		return domain.NewValidationError("plate is required")
	}
	if v.DailyPriceCents <= 0 {
		return domain.NewValidationError("daily price must be positive")
	}
	if v.Status == "" {
		v.Status = domain.VehicleStatusAvailable
	}
	return s.vehicleRepo.Create(ctx, v)
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, v *domain.Vehicle) error {
	current, err := s.vehicleRepo.GetByID(ctx, v.ID)
	if err != nil {
		return err
	}
	// Edits never change availability; status moves only through ChangeStatus
	// or the reservation workflows.
	v.Status = current.Status
	return s.vehicleRepo.Update(ctx, v)
}

func (s *vehicleService) ChangeStatus(ctx context.Context, id int32, to domain.VehicleStatus) (*domain.Vehicle, error) {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanChangeStatus(v.Status, to) {
		return nil, domain.NewValidationError("cannot change vehicle status from %s to %s", v.Status, to)
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, id, to); err != nil {
		return nil, &domain.OperationError{Step: "update vehicle status", Err: err}
	}
	v.Status = to
	return v, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx, status)
}
