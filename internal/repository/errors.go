// Package repository defines error types that are reused across
// multiple repositories.  These sentinel values allow higher layers
// such as handlers and the booking service to distinguish between
// different failure scenarios.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.  Handlers should translate this into an
// HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot be performed
// because of conflicting state, such as deleting a hotel that still
// has rooms or a room with live bookings.  Handlers should translate
// this into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrHotelNotFound is returned when a hotel lookup fails.
var ErrHotelNotFound = errors.New("hotel not found")

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when a booking lookup fails.
var ErrBookingNotFound = errors.New("booking not found")
