package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/repository"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, rv *domain.Reservation) error {
	query := `INSERT INTO reservations (vehicle_id, user_id, branch_id, start_date, end_date, days, total_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rv.VehicleID, rv.UserID, rv.BranchID, rv.StartDate, rv.EndDate, rv.Days, rv.TotalCents, time.Now()).Scan(&rv.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int32) (*domain.Reservation, error) {
	rv := &domain.Reservation{}
	query := `SELECT id, vehicle_id, user_id, branch_id, start_date, end_date, days, total_cents, created_on FROM reservations WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rv.ID, &rv.VehicleID, &rv.UserID, &rv.BranchID, &rv.StartDate, &rv.EndDate, &rv.Days, &rv.TotalCents, &rv.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, branch_id, start_date, end_date, days, total_cents, created_on
	          FROM reservations WHERE user_id = $1 ORDER BY created_on DESC`
	return r.queryReservations(ctx, query, userID)
}

func (r *reservationRepository) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	query := `SELECT id, vehicle_id, user_id, branch_id, start_date, end_date, days, total_cents, created_on
	          FROM reservations ORDER BY created_on DESC`
	return r.queryReservations(ctx, query)
}

func (r *reservationRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *reservationRepository) queryReservations(ctx context.Context, query string, args ...interface{}) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var rv domain.Reservation
		if err := rows.Scan(&rv.ID, &rv.VehicleID, &rv.UserID, &rv.BranchID, &rv.StartDate, &rv.EndDate, &rv.Days, &rv.TotalCents, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	return reservations, rows.Err()
}
