// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios and map each one to its HTTP status and client message
// without inspecting error strings.
package repository

import "errors"

// ErrUsernameExists is returned when registering with a username
// that is already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrEmailExists is returned when registering with an email address
// that is already taken.
var ErrEmailExists = errors.New("email already exists")

// ErrBookingNotFound is returned when a booking does not exist under
// the caller's authority. A booking owned by someone else looks
// exactly like a missing one so that existence is not leaked.
var ErrBookingNotFound = errors.New("booking not found")

// ErrAlreadyCanceled is returned when canceling a booking whose
// status is already canceled. Cancellation is terminal.
var ErrAlreadyCanceled = errors.New("booking already canceled")
