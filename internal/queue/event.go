// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names for booking lifecycle events.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published when a booking is successfully
// created (including the replacement booking of a modification). It
// contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID   int64    `json:"booking_id"`
	UserID      string   `json:"user_id"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	Guests      int      `json:"guests"`
	RoomNumbers []string `json:"rooms"`
	TotalPrice  float64  `json:"total_price"`
	ConfirmedAt string   `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a booking is canceled,
// either directly or as part of a modification.
type BookingCancelledEvent struct {
	BookingID   int64    `json:"booking_id"`
	UserID      string   `json:"user_id"`
	CheckIn     string   `json:"check_in"`
	CheckOut    string   `json:"check_out"`
	RoomNumbers []string `json:"rooms"`
	CancelledAt string   `json:"cancelled_at"`
}
