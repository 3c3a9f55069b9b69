package jobs

import (
	"context"
	"fmt"
	"time"

	"autorenta-backend/internal/booking"
	"autorenta-backend/internal/domain"
	"autorenta-backend/internal/logger"
)

// ReleaseElapsedReservations deletes reservations whose return date has passed
// and puts their vehicles back on the AVAILABLE list.
func (jr *JobRunner) ReleaseElapsedReservations() {
	jr.runWithRecovery("ReleaseElapsedReservations", func() {
		ctx := context.Background()
		today := time.Now().UTC().Format(booking.DateLayout)

		query := `
			DELETE FROM reservations
			WHERE (start_date::date + days) < $1::date
			RETURNING id, vehicle_id
		`

		rows, err := jr.db.QueryContext(ctx, query, today)
		if err != nil {
			logger.Error("Failed to release elapsed reservations", "error", err)
			return
		}
		defer rows.Close()

		var vehicleIDs []int32
		count := 0
		for rows.Next() {
			var reservationID, vehicleID int32
			if err := rows.Scan(&reservationID, &vehicleID); err != nil {
				logger.Error("Failed to scan elapsed reservation", "error", err)
				continue
			}
			vehicleIDs = append(vehicleIDs, vehicleID)
			count++
			logger.Debug("Released elapsed reservation",
				"reservation_id", reservationID,
				"vehicle_id", vehicleID)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating elapsed reservations", "error", err)
			return
		}

		for _, vehicleID := range vehicleIDs {
			if err := jr.store.UpdateStatus(ctx, vehicleID, domain.VehicleStatusAvailable); err != nil {
				logger.Error("Failed to reset vehicle after release",
					"vehicle_id", vehicleID,
					"error", err)
			}
		}

		logger.Info("Released elapsed reservations", "count", count)
	})
}

// SendReturnReminders emails customers whose vehicles are due back tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		ctx := context.Background()
		tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format(booking.DateLayout)

		query := `
			SELECT r.id, r.start_date, r.days, u.email, u.name, v.brand, v.model
			FROM reservations r
			JOIN users u ON u.id = r.user_id
			JOIN vehicles v ON v.id = r.vehicle_id
			WHERE (r.start_date::date + r.days) = $1::date
		`

		rows, err := jr.db.QueryContext(ctx, query, tomorrow)
		if err != nil {
			logger.Error("Failed to query upcoming returns", "error", err)
			return
		}
		defer rows.Close()

		type reminder struct {
			ReservationID int32
			StartDate     string
			Days          int32
			Email         string
			Name          string
			Brand         string
			Model         string
		}
		var reminders []reminder
		for rows.Next() {
			var rm reminder
			if err := rows.Scan(&rm.ReservationID, &rm.StartDate, &rm.Days, &rm.Email, &rm.Name, &rm.Brand, &rm.Model); err != nil {
				logger.Error("Failed to scan upcoming return", "error", err)
				continue
			}
			reminders = append(reminders, rm)
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating upcoming returns", "error", err)
			return
		}

		sent := 0
		for _, rm := range reminders {
			returnDate, err := booking.ReturnDate(rm.StartDate, rm.Days)
			if err != nil {
				logger.Error("Failed to compute return date for reminder",
					"reservation_id", rm.ReservationID,
					"error", err)
				continue
			}
			vehicle := fmt.Sprintf("%s %s", rm.Brand, rm.Model)
			if err := jr.services.Email.SendReturnReminder(ctx, rm.Email, rm.Name, vehicle, returnDate); err != nil {
				logger.Error("Failed to send return reminder",
					"reservation_id", rm.ReservationID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Sent return reminders", "sent", sent, "due", len(reminders))
	})
}
