package service

import (
	"context"
	"errors"
	"testing"

	"autorenta-backend/internal/booking"
	"autorenta-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type reservationFixture struct {
	reservations *MockReservationRepo
	vehicles     *MockVehicleRepo
	branches     *MockBranchRepo
	users        *MockUserRepo
	email        *MockEmailService
	svc          ReservationService
}

func newReservationFixture() *reservationFixture {
	f := &reservationFixture{
		reservations: new(MockReservationRepo),
		vehicles:     new(MockVehicleRepo),
		branches:     new(MockBranchRepo),
		users:        new(MockUserRepo),
		email:        new(MockEmailService),
	}
	f.svc = NewReservationService(f.reservations, f.vehicles, f.branches, f.users, f.email)
	return f
}

func availableVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:              2,
		Brand:           "Toyota",
		Model:           "Corolla",
		Plate:           "ABC-123",
		DailyPriceCents: 10000,
		Status:          domain.VehicleStatusAvailable,
	}
}

func TestReservationService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)
	input := CreateReservationInput{
		VehicleID: 2,
		BranchID:  3,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
	}

	t.Run("Success", func(t *testing.T) {
		f := newReservationFixture()
		f.vehicles.On("GetByID", ctx, input.VehicleID).Return(availableVehicle(), nil)
		f.reservations.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)
		f.vehicles.On("UpdateStatus", ctx, input.VehicleID, domain.VehicleStatusReserved).Return(nil)
		f.users.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "ana@test.com", Name: "Ana"}, nil)
		f.email.On("SendReservationConfirmation", ctx, "ana@test.com", "Ana", "Toyota Corolla", "2024-06-01", "2024-06-03", int32(20000)).Return(nil)

		res, err := f.svc.CreateReservation(ctx, userID, input)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int32(2), res.Days)
		assert.Equal(t, int32(20000), res.TotalCents)
		assert.Equal(t, input.VehicleID, res.VehicleID)
		assert.Equal(t, userID, res.UserID)
		f.vehicles.AssertCalled(t, "UpdateStatus", ctx, input.VehicleID, domain.VehicleStatusReserved)
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		f := newReservationFixture()

		res, err := f.svc.CreateReservation(ctx, 0, input)
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
		f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Missing Branch", func(t *testing.T) {
		f := newReservationFixture()

		in := input
		in.BranchID = 0
		res, err := f.svc.CreateReservation(ctx, userID, in)
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("Missing Dates", func(t *testing.T) {
		f := newReservationFixture()

		in := input
		in.EndDate = ""
		res, err := f.svc.CreateReservation(ctx, userID, in)
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("End Before Start", func(t *testing.T) {
		f := newReservationFixture()

		in := input
		in.StartDate, in.EndDate = in.EndDate, in.StartDate
		res, err := f.svc.CreateReservation(ctx, userID, in)
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
		assert.Contains(t, err.Error(), booking.ErrInvalidDateRange.Error())
		f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Vehicle Not Available", func(t *testing.T) {
		f := newReservationFixture()
		reserved := availableVehicle()
		reserved.Status = domain.VehicleStatusReserved
		f.vehicles.On("GetByID", ctx, input.VehicleID).Return(reserved, nil)

		res, err := f.svc.CreateReservation(ctx, userID, input)
		assert.Nil(t, res)
		assert.True(t, domain.IsValidation(err))
		f.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Vehicle", func(t *testing.T) {
		f := newReservationFixture()
		f.vehicles.On("GetByID", ctx, input.VehicleID).Return(nil, domain.ErrNotFound)

		res, err := f.svc.CreateReservation(ctx, userID, input)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Create Fails", func(t *testing.T) {
		f := newReservationFixture()
		f.vehicles.On("GetByID", ctx, input.VehicleID).Return(availableVehicle(), nil)
		f.reservations.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(errors.New("duplicate key"))

		res, err := f.svc.CreateReservation(ctx, userID, input)
		assert.Nil(t, res)
		var opErr *domain.OperationError
		assert.ErrorAs(t, err, &opErr)
		assert.Equal(t, "create reservation", opErr.Step)
		f.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Status Update Fails After Create", func(t *testing.T) {
		f := newReservationFixture()
		f.vehicles.On("GetByID", ctx, input.VehicleID).Return(availableVehicle(), nil)
		f.reservations.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil)
		f.vehicles.On("UpdateStatus", ctx, input.VehicleID, domain.VehicleStatusReserved).Return(errors.New("connection reset"))

		res, err := f.svc.CreateReservation(ctx, userID, input)
		assert.Nil(t, res)
		var opErr *domain.OperationError
		assert.ErrorAs(t, err, &opErr)
		assert.Equal(t, "update vehicle status", opErr.Step)
		// The reservation row was written and stays written.
		f.reservations.AssertCalled(t, "Create", ctx, mock.AnythingOfType("*domain.Reservation"))
	})
}

func TestReservationService_CancelReservation(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)
	reservationID := int32(7)
	stored := &domain.Reservation{
		ID:        reservationID,
		VehicleID: 2,
		UserID:    userID,
		BranchID:  3,
		StartDate: "2024-06-01",
		EndDate:   "2024-06-03",
		Days:      2,
	}

	t.Run("Success", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("GetByID", ctx, reservationID).Return(stored, nil)
		f.reservations.On("Delete", ctx, reservationID).Return(nil)
		f.vehicles.On("UpdateStatus", ctx, stored.VehicleID, domain.VehicleStatusAvailable).Return(nil)
		f.users.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "ana@test.com", Name: "Ana"}, nil)
		f.vehicles.On("GetByID", ctx, stored.VehicleID).Return(availableVehicle(), nil)
		f.email.On("SendCancellationNotice", ctx, "ana@test.com", "Ana", "Toyota Corolla").Return(nil)

		err := f.svc.CancelReservation(ctx, userID, reservationID)
		assert.NoError(t, err)
		f.reservations.AssertCalled(t, "Delete", ctx, reservationID)
		f.vehicles.AssertCalled(t, "UpdateStatus", ctx, stored.VehicleID, domain.VehicleStatusAvailable)
	})

	t.Run("Not Owner", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("GetByID", ctx, reservationID).Return(stored, nil)

		err := f.svc.CancelReservation(ctx, int32(99), reservationID)
		assert.ErrorIs(t, err, ErrUnauthorized)
		f.reservations.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Reservation", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("GetByID", ctx, reservationID).Return(nil, domain.ErrNotFound)

		err := f.svc.CancelReservation(ctx, userID, reservationID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Delete Fails", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("GetByID", ctx, reservationID).Return(stored, nil)
		f.reservations.On("Delete", ctx, reservationID).Return(errors.New("deadlock detected"))

		err := f.svc.CancelReservation(ctx, userID, reservationID)
		var opErr *domain.OperationError
		assert.ErrorAs(t, err, &opErr)
		assert.Equal(t, "delete reservation", opErr.Step)
		// Vehicle must stay untouched when the delete never happened.
		f.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Status Reset Fails After Delete", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("GetByID", ctx, reservationID).Return(stored, nil)
		f.reservations.On("Delete", ctx, reservationID).Return(nil)
		f.vehicles.On("UpdateStatus", ctx, stored.VehicleID, domain.VehicleStatusAvailable).Return(errors.New("connection reset"))

		err := f.svc.CancelReservation(ctx, userID, reservationID)
		var opErr *domain.OperationError
		assert.ErrorAs(t, err, &opErr)
		assert.Equal(t, "reset vehicle status", opErr.Step)
	})
}

func TestReservationService_ListUserReservations(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)

	makeReservation := func(id, vehicleID, branchID int32) domain.Reservation {
		return domain.Reservation{
			ID:        id,
			VehicleID: vehicleID,
			UserID:    userID,
			BranchID:  branchID,
			StartDate: "2024-06-01",
			EndDate:   "2024-06-03",
			Days:      2,
		}
	}

	t.Run("Drops Rows With Missing Vehicles", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("ListByUser", ctx, userID).Return([]domain.Reservation{
			makeReservation(1, 10, 100),
			makeReservation(2, 11, 100),
			makeReservation(3, 12, 100),
		}, nil)

		f.vehicles.On("GetByID", ctx, int32(10)).Return(&domain.Vehicle{ID: 10, Brand: "Toyota", Model: "Corolla"}, nil)
		f.vehicles.On("GetByID", ctx, int32(11)).Return(nil, domain.ErrNotFound)
		f.vehicles.On("GetByID", ctx, int32(12)).Return(&domain.Vehicle{ID: 12, Brand: "Kia", Model: "Rio"}, nil)
		f.branches.On("GetByID", ctx, int32(100)).Return(&domain.Branch{ID: 100, Name: "Centro"}, nil)

		details, err := f.svc.ListUserReservations(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, details, 2)
		assert.Equal(t, int32(10), details[0].Vehicle.ID)
		assert.Equal(t, int32(12), details[1].Vehicle.ID)
		assert.Equal(t, "Centro", details[0].BranchName)
		assert.Equal(t, "2024-06-03", details[0].ReturnDate)
	})

	t.Run("Missing Branch Gets Placeholder", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("ListByUser", ctx, userID).Return([]domain.Reservation{
			makeReservation(1, 10, 100),
		}, nil)
		f.vehicles.On("GetByID", ctx, int32(10)).Return(&domain.Vehicle{ID: 10, Brand: "Toyota", Model: "Corolla"}, nil)
		f.branches.On("GetByID", ctx, int32(100)).Return(nil, domain.ErrNotFound)

		details, err := f.svc.ListUserReservations(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, details, 1)
		assert.Equal(t, BranchNotSpecified, details[0].BranchName)
	})

	t.Run("Vehicle Lookup Error Propagates", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("ListByUser", ctx, userID).Return([]domain.Reservation{
			makeReservation(1, 10, 100),
		}, nil)
		f.vehicles.On("GetByID", ctx, int32(10)).Return(nil, errors.New("connection refused"))
		f.branches.On("GetByID", ctx, int32(100)).Return(&domain.Branch{ID: 100, Name: "Centro"}, nil)

		details, err := f.svc.ListUserReservations(ctx, userID)
		assert.Error(t, err)
		assert.Nil(t, details)
	})

	t.Run("No Reservations", func(t *testing.T) {
		f := newReservationFixture()
		f.reservations.On("ListByUser", ctx, userID).Return([]domain.Reservation{}, nil)

		details, err := f.svc.ListUserReservations(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, details)
		assert.Empty(t, details)
	})
}
