package model

import "time"

// Booking records a user's stay reservation. It aggregates one or
// more rooms booked under a single transaction via the
// `booking_rooms` link table and tracks the booking status.
// A canceled booking is terminal: its row and link rows are kept
// for history and it can never be re-activated.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who made the booking (UUID string).
//  CheckIn   – first night of the stay.
//  CheckOut  – day of departure (exclusive; always after CheckIn).
//  Guests    – number of guests for the stay.
//  Status    – state of the booking (confirmed, canceled).
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
//
// The rooms of a booking are stored as (booking_id, room_id) link
// rows and loaded separately by the repository.
type Booking struct {
	ID        int64     // bookings.id
	UserID    string    // bookings.user_id
	CheckIn   time.Time // bookings.check_in
	CheckOut  time.Time // bookings.check_out
	Guests    int       // bookings.guests
	Status    string    // bookings.status
	CreatedAt time.Time // bookings.created_at
	UpdatedAt time.Time // bookings.updated_at
}

// Booking status values.
const (
	BookingConfirmed = "confirmed"
	BookingCanceled  = "canceled"
)
