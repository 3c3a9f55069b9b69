package service

import (
	"context"
	"errors"
	"sync"

	"autorenta-backend/internal/booking"
	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/logger"
	"autorenta-backend/internal/repository"
)

// ErrUnauthorized is returned when a caller acts on a reservation that is not
// theirs.
var ErrUnauthorized = errors.New("unauthorized")

// BranchNotSpecified is the display placeholder for a reservation whose branch
// lookup came back empty.
const BranchNotSpecified = "No especificada"

type reservationService struct {
	reservationRepo repository.ReservationRepository
	vehicleRepo     repository.VehicleRepository
	branchRepo      repository.BranchRepository
	userRepo        repository.UserRepository
	emailSvc        EmailService
}

func NewReservationService(
	reservationRepo repository.ReservationRepository,
	vehicleRepo repository.VehicleRepository,
	branchRepo repository.BranchRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) ReservationService {
	return &reservationService{
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		branchRepo:      branchRepo,
		userRepo:        userRepo,
		emailSvc:        emailSvc,
	}
}

// CreateReservation runs the booking workflow: validate the form, price the
// stay, persist the reservation, then mark the vehicle reserved. Validation
// failures persist nothing. If the vehicle status update fails after the
// reservation row was created, the row is NOT rolled back; the mismatch is
// logged and reported to the caller.
func (s *reservationService) CreateReservation(ctx context.Context, userID int32, in CreateReservationInput) (*domain.Reservation, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("sign in to make a reservation")
	}
	if in.BranchID <= 0 {
		return nil, domain.NewValidationError("select a branch")
	}
	if in.StartDate == "" || in.EndDate == "" {
		return nil, domain.NewValidationError("start and end dates are required")
	}

	days, err := booking.ComputeStay(in.StartDate, in.EndDate)
	if err != nil {
		return nil, domain.NewValidationError("%v", err)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, in.VehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusAvailable {
		return nil, domain.NewValidationError("vehicle is not available for reservation")
	}

	reservation := &domain.Reservation{
		VehicleID:  vehicle.ID,
		UserID:     userID,
		BranchID:   in.BranchID,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
		Days:       days,
		TotalCents: booking.ComputeTotal(vehicle.DailyPriceCents, days),
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, &domain.OperationError{Step: "create reservation", Err: err}
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, vehicle.ID, domain.VehicleStatusReserved); err != nil {
		// The reservation row already exists; leaving it in place mirrors
		// the accepted consistency gap of the booking flow.
		logger.ErrorContext(ctx, "reservation created but vehicle status update failed",
			"reservation_id", reservation.ID, "vehicle_id", vehicle.ID, "error", err)
		return nil, &domain.OperationError{Step: "update vehicle status", Err: err}
	}

	s.notifyConfirmation(ctx, userID, vehicle, reservation)

	return reservation, nil
}

// CancelReservation deletes the reservation and resets its vehicle to
// available, in that order. A delete failure aborts before the vehicle is
// touched. A status-reset failure after a successful delete leaves the vehicle
// marked reserved; that mismatch is logged and reported.
func (s *reservationService) CancelReservation(ctx context.Context, userID, reservationID int32) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if reservation.UserID != userID {
		return ErrUnauthorized
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		return &domain.OperationError{Step: "delete reservation", Err: err}
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, reservation.VehicleID, domain.VehicleStatusAvailable); err != nil {
		logger.ErrorContext(ctx, "reservation deleted but vehicle still marked reserved",
			"reservation_id", reservationID, "vehicle_id", reservation.VehicleID, "error", err)
		return &domain.OperationError{Step: "reset vehicle status", Err: err}
	}

	s.notifyCancellation(ctx, userID, reservation)

	return nil
}

// ListUserReservations fetches the user's reservations and fans out the
// vehicle and branch lookups concurrently, keeping the three sequences
// index-aligned. A reservation whose vehicle lookup comes back empty is
// dropped from the result; a missing branch renders as BranchNotSpecified.
func (s *reservationService) ListUserReservations(ctx context.Context, userID int32) ([]domain.ReservationDetail, error) {
	reservations, err := s.reservationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(reservations) == 0 {
		return []domain.ReservationDetail{}, nil
	}

	vehicles := make([]*domain.Vehicle, len(reservations))
	branches := make([]*domain.Branch, len(reservations))
	errs := make([]error, len(reservations))

	var wg sync.WaitGroup
	for i := range reservations {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			v, err := s.vehicleRepo.GetByID(ctx, reservations[i].VehicleID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				errs[i] = err
				return
			}
			vehicles[i] = v
		}(i)
		go func(i int) {
			defer wg.Done()
			// A failed branch lookup renders as a placeholder, never an error.
			b, err := s.branchRepo.GetByID(ctx, reservations[i].BranchID)
			if err != nil {
				return
			}
			branches[i] = b
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	details := make([]domain.ReservationDetail, 0, len(reservations))
	for i, rv := range reservations {
		if vehicles[i] == nil {
			continue
		}
		branchName := BranchNotSpecified
		if branches[i] != nil {
			branchName = branches[i].Name
		}
		returnDate, err := booking.ReturnDate(rv.StartDate, rv.Days)
		if err != nil {
			return nil, err
		}
		details = append(details, domain.ReservationDetail{
			Reservation: rv,
			Vehicle:     *vehicles[i],
			BranchName:  branchName,
			ReturnDate:  returnDate,
		})
	}
	return details, nil
}

func (s *reservationService) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branchRepo.List(ctx)
}

// notifyConfirmation emails the customer a booking summary. Failures are
// logged, never surfaced.
func (s *reservationService) notifyConfirmation(ctx context.Context, userID int32, vehicle *domain.Vehicle, rv *domain.Reservation) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	returnDate, err := booking.ReturnDate(rv.StartDate, rv.Days)
	if err != nil {
		return
	}
	vehicleName := vehicle.Brand + " " + vehicle.Model
	if err := s.emailSvc.SendReservationConfirmation(ctx, user.Email, user.Name, vehicleName, rv.StartDate, returnDate, rv.TotalCents); err != nil {
		logger.ExternalServiceResult("email", "SendReservationConfirmation", err, "reservation_id", rv.ID)
	}
}

func (s *reservationService) notifyCancellation(ctx context.Context, userID int32, rv *domain.Reservation) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return
	}
	vehicleName := ""
	if v, err := s.vehicleRepo.GetByID(ctx, rv.VehicleID); err == nil {
		vehicleName = v.Brand + " " + v.Model
	}
	if err := s.emailSvc.SendCancellationNotice(ctx, user.Email, user.Name, vehicleName); err != nil {
		logger.ExternalServiceResult("email", "SendCancellationNotice", err, "reservation_id", rv.ID)
	}
}
