package service

import (
	"context"
	"testing"

	"autorenta-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestReportService_AvailabilityReport(t *testing.T) {
	ctx := context.Background()

	vehicleRepo := new(MockVehicleRepo)
	reservationRepo := new(MockReservationRepo)
	svc := NewReportService(vehicleRepo, reservationRepo)

	vehicleRepo.On("List", ctx, domain.VehicleStatus("")).Return([]domain.Vehicle{
		{ID: 1, Brand: "Toyota", Status: domain.VehicleStatusReserved},
		{ID: 2, Brand: "Toyota", Status: domain.VehicleStatusAvailable},
		{ID: 3, Brand: "Kia", Status: domain.VehicleStatusReserved},
		{ID: 4, Brand: "Ford", Status: domain.VehicleStatusMaintenance},
		{ID: 5, Brand: "Ford", Status: domain.VehicleStatusOutOfService},
	}, nil)
	reservationRepo.On("ListAll", ctx).Return([]domain.Reservation{
		{ID: 1, VehicleID: 1, TotalCents: 20000},
		{ID: 2, VehicleID: 1, TotalCents: 10000},
		{ID: 3, VehicleID: 3, TotalCents: 50000},
	}, nil)

	report, err := svc.AvailabilityReport(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), report.TotalVehicles)
	assert.Equal(t, int32(1), report.Available)
	assert.Equal(t, int32(2), report.Reserved)
	assert.Equal(t, int32(1), report.Maintenance)
	assert.Equal(t, int32(1), report.OutOfService)
	assert.Equal(t, int32(80000), report.TotalRevenueCents)

	// Kia out-earns Toyota, so it sorts first. Ford has no revenue and is
	// absent entirely.
	assert.Equal(t, []BrandRevenue{
		{Brand: "Kia", Count: 1, RevenueCents: 50000},
		{Brand: "Toyota", Count: 1, RevenueCents: 30000},
	}, report.RevenueByBrand)
}

func TestReportService_TopReservedBrands(t *testing.T) {
	ctx := context.Background()

	t.Run("Shares Sum To Hundred", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		reservationRepo := new(MockReservationRepo)
		svc := NewReportService(vehicleRepo, reservationRepo)

		vehicleRepo.On("List", ctx, domain.VehicleStatusReserved).Return([]domain.Vehicle{
			{ID: 1, Brand: "Toyota", Status: domain.VehicleStatusReserved},
			{ID: 2, Brand: "toyota", Status: domain.VehicleStatusReserved},
			{ID: 3, Brand: "Kia", Status: domain.VehicleStatusReserved},
			{ID: 4, Brand: "Ford", Status: domain.VehicleStatusReserved},
		}, nil)

		shares, err := svc.TopReservedBrands(ctx)
		assert.NoError(t, err)
		assert.Len(t, shares, 3)

		// Brand casing is normalized before counting.
		assert.Equal(t, "toyota", shares[0].Brand)
		assert.Equal(t, int32(2), shares[0].Count)
		assert.InDelta(t, 50.0, shares[0].Percentage, 0.001)

		var sum float64
		for _, s := range shares {
			sum += s.Percentage
		}
		assert.InDelta(t, 100.0, sum, 0.001)
	})

	t.Run("Empty Fleet", func(t *testing.T) {
		vehicleRepo := new(MockVehicleRepo)
		reservationRepo := new(MockReservationRepo)
		svc := NewReportService(vehicleRepo, reservationRepo)

		vehicleRepo.On("List", ctx, domain.VehicleStatusReserved).Return([]domain.Vehicle{}, nil)

		shares, err := svc.TopReservedBrands(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, shares)
		assert.Empty(t, shares)
	})
}
