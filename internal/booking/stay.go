// Package booking holds the pure calculations behind a reservation: billable
// stay length and total price. No I/O and no rounding; display formatting is
// the caller's concern.
package booking

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across the API and the
// reservations table. Dates carry no time-of-day component.
const DateLayout = "2006-01-02"

// ErrInvalidDateRange is returned when the end date precedes the start date.
var ErrInvalidDateRange = errors.New("end date must not be before start date")

// ParseDate parses a yyyy-mm-dd calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", s)
	}
	return t, nil
}

// ComputeStay returns the number of billable rental days for a date range.
// The count is the whole-day difference end-start; a same-day rental counts
// as one billable day.
func ComputeStay(startDate, endDate string) (int32, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, err
	}
	if end.Before(start) {
		return 0, ErrInvalidDateRange
	}
	days := int32(end.Sub(start).Hours() / 24)
	if days == 0 {
		days = 1
	}
	return days, nil
}

// ComputeTotal is the exact reservation total: daily price times day count.
func ComputeTotal(dailyPriceCents int32, days int32) int32 {
	return dailyPriceCents * days
}

// ReturnDate derives the date a vehicle is due back: start date plus the
// billable day count.
func ReturnDate(startDate string, days int32) (string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return "", err
	}
	return start.AddDate(0, 0, int(days)).Format(DateLayout), nil
}
