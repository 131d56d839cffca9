// Package booking contains the pure domain logic of the reservation
// core: date handling, availability filtering, room allocation and
// the combination suggestion heuristic. Everything here operates on
// in-memory snapshots fetched by the repository layer, which keeps
// the algorithms testable without a database.
package booking

import (
	"errors"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Wire formats for dates: compact YYYYMMDD on input, ISO YYYY-MM-DD
// on output.
const (
	DateLayoutIn  = "20060102"
	DateLayoutOut = "2006-01-02"
)

// ErrInvalidDateFormat is returned when a date string does not parse
// as YYYYMMDD.
var ErrInvalidDateFormat = errors.New("invalid date format")

// ErrInvalidDateRange is returned when check_out is not strictly
// after check_in.
var ErrInvalidDateRange = errors.New("check_out must be after check_in")

// ParseStay parses a YYYYMMDD check-in/check-out pair and enforces
// check_out > check_in.
func ParseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(DateLayoutIn, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	out, err := time.Parse(DateLayoutIn, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDateFormat
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return in, out, nil
}

// Nights returns the number of nights between check-in and check-out.
// The checkout day is exclusive: [Jan 1, Jan 3) is two nights.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) share at least one night.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Available filters rooms down to those not referenced by any active
// overlapping booking. The booked set is the room IDs collected from
// the link rows of non-canceled bookings overlapping the requested
// range; fetch order of the input slice is preserved.
func Available(all []model.Room, booked map[int64]struct{}) []model.Room {
	free := make([]model.Room, 0, len(all))
	for _, r := range all {
		if _, taken := booked[r.ID]; !taken {
			free = append(free, r)
		}
	}
	return free
}
