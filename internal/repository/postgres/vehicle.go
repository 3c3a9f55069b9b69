package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (brand, model, plate, category, daily_price_cents, image_url, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, v.Brand, v.Model, v.Plate, v.Category, v.DailyPriceCents, v.ImageURL, v.Status, time.Now()).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, brand, model, plate, COALESCE(category, ''), daily_price_cents, COALESCE(image_url, ''), status, created_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Brand, &v.Model, &v.Plate, &v.Category, &v.DailyPriceCents, &v.ImageURL, &v.Status, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET brand=$1, model=$2, plate=$3, category=$4, daily_price_cents=$5, image_url=$6, status=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, v.Brand, v.Model, v.Plate, v.Category, v.DailyPriceCents, v.ImageURL, v.Status, v.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *vehicleRepository) List(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT id, brand, model, plate, COALESCE(category, ''), daily_price_cents, COALESCE(image_url, ''), status, created_on FROM vehicles`
	args := []interface{}{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_on DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Plate, &v.Category, &v.DailyPriceCents, &v.ImageURL, &v.Status, &v.CreatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// requireRowAffected maps zero-row updates to domain.ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
