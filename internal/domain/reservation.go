package domain

// Reservation links a user, a vehicle, a branch and a date range with the
// total computed at creation time. Reservations are created by the booking
// workflow and deleted by cancellation or housekeeping; there is no
// update-in-place.
type Reservation struct {
	ID         int32  `json:"id"`
	VehicleID  int32  `json:"vehicle_id"`
	UserID     int32  `json:"user_id"`
	BranchID   int32  `json:"branch_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Days       int32  `json:"days"`
	TotalCents int32  `json:"total_cents"`
	CreatedOn  string `json:"created_on"`
}

// ReservationDetail is the composed row shown on the "my reservations" page:
// the reservation joined with its vehicle and branch name, plus the derived
// return date (start date + days).
type ReservationDetail struct {
	Reservation Reservation `json:"reservation"`
	Vehicle     Vehicle     `json:"vehicle"`
	BranchName  string      `json:"branch_name"`
	ReturnDate  string      `json:"return_date"`
}
