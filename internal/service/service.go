package service

import (
	"context"

	"autorenta-backend/internal/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)                        // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type VehicleService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int32) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, v *domain.Vehicle) error
	ChangeStatus(ctx context.Context, id int32, to domain.VehicleStatus) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error)
}

// CreateReservationInput carries the user-confirmed booking form.
type CreateReservationInput struct {
	VehicleID int32  `json:"vehicle_id"`
	BranchID  int32  `json:"branch_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ReservationService interface {
	CreateReservation(ctx context.Context, userID int32, in CreateReservationInput) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, userID, reservationID int32) error
	ListUserReservations(ctx context.Context, userID int32) ([]domain.ReservationDetail, error)
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}

// BrandRevenue is one row of the availability report: reserved vehicles of a
// brand and the revenue their reservations generated.
type BrandRevenue struct {
	Brand        string `json:"brand"`
	Count        int32  `json:"count"`
	RevenueCents int32  `json:"revenue_cents"`
}

type AvailabilityReport struct {
	TotalVehicles     int32          `json:"total_vehicles"`
	Available         int32          `json:"available"`
	Reserved          int32          `json:"reserved"`
	Maintenance       int32          `json:"maintenance"`
	OutOfService      int32          `json:"out_of_service"`
	TotalRevenueCents int32          `json:"total_revenue_cents"`
	RevenueByBrand    []BrandRevenue `json:"revenue_by_brand"`
}

// BrandShare is one slice of the reserved-brand distribution.
type BrandShare struct {
	Brand      string  `json:"brand"`
	Count      int32   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ReportService interface {
	AvailabilityReport(ctx context.Context) (*AvailabilityReport, error)
	TopReservedBrands(ctx context.Context) ([]BrandShare, error)
}

type EmailService interface {
	SendReservationConfirmation(ctx context.Context, to, name, vehicle, startDate, returnDate string, totalCents int32) error
	SendCancellationNotice(ctx context.Context, to, name, vehicle string) error
	SendReturnReminder(ctx context.Context, to, name, vehicle, returnDate string) error
}

type ImageStorageService interface {
	// GetUploadURL returns a presigned upload URL plus the storage key for a
	// new vehicle image.
	GetUploadURL(ctx context.Context, vehicleID int32, filename, contentType string) (uploadURL, key string, err error)
	// ConfirmVehicleImage records the uploaded image's public URL on the vehicle.
	ConfirmVehicleImage(ctx context.Context, vehicleID int32, key string) (*domain.Vehicle, error)
}
