package postgres

import (
	"database/sql"

	"autorenta-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.VehicleRepository
	repository.ReservationRepository
	repository.BranchRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		VehicleRepository:     NewVehicleRepository(db),
		ReservationRepository: NewReservationRepository(db),
		BranchRepository:      NewBranchRepository(db),
	}
}
