// Package booking implements the availability checker, the booking
// writer and the booking status machine.  These sentinel values allow
// higher layers such as handlers to distinguish between different
// failure scenarios and map each to a distinct HTTP response.
package booking

import "errors"

// ErrRoomNotFound is returned when the referenced room does not exist.
// Handlers should translate this into an HTTP 404 response.
var ErrRoomNotFound = errors.New("room not found")

// ErrBookingNotFound is returned when the referenced booking does not
// exist.  Handlers should translate this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// ErrInvalidRange is returned for malformed or illogical date ranges
// (checkout not strictly after checkin) and for out-of-bounds guest
// counts.  Handlers should translate this into an HTTP 400 response.
var ErrInvalidRange = errors.New("invalid date range")

// ErrRoomUnavailable is returned when no free unit of the room's
// inventory pool remains for the requested range.  Handlers should
// translate this into an HTTP 409 response.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrForbidden is returned when the acting user is neither the owner
// of the booking nor an administrator.
var ErrForbidden = errors.New("forbidden")

// ErrAlreadyCancelled is returned when cancelling a booking that is
// already in the CANCELLED state.
var ErrAlreadyCancelled = errors.New("booking already cancelled")

// ErrCannotCancel is returned when cancelling a COMPLETED booking.
var ErrCannotCancel = errors.New("booking cannot be cancelled")

// ErrInvalidTransition is returned when an administrative status
// update does not follow the booking status machine.
var ErrInvalidTransition = errors.New("invalid status transition")
