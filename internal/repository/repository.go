package repository

import (
	"context"

	"autorenta-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int32) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	// UpdateStatus returns domain.ErrNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error
	// List returns all vehicles, filtered by status when status is non-empty.
	List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int32) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Reservation, error)
	ListAll(ctx context.Context) ([]domain.Reservation, error)
	Delete(ctx context.Context, id int32) error
}

type BranchRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Branch, error)
	List(ctx context.Context) ([]domain.Branch, error)
}
