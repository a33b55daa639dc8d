package model

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
    StatusPending   BookingStatus = "PENDING"
    StatusConfirmed BookingStatus = "CONFIRMED"
    StatusCancelled BookingStatus = "CANCELLED"
    StatusCompleted BookingStatus = "COMPLETED"
)

// Valid reports whether the status is one of the known values.
func (s BookingStatus) Valid() bool {
    switch s {
    case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
        return true
    }
    return false
}

// CanTransitionTo reports whether the status machine permits moving
// from s to next.  PENDING may become CONFIRMED or CANCELLED;
// CONFIRMED may become CANCELLED or COMPLETED.  CANCELLED and
// COMPLETED are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
    switch s {
    case StatusPending:
        return next == StatusConfirmed || next == StatusCancelled
    case StatusConfirmed:
        return next == StatusCancelled || next == StatusCompleted
    }
    return false
}

// Booking records a guest's reservation of one room unit for a
// half-open date range [CheckIn, CheckOut).  Bookings are never
// physically deleted by the normal flow; cancellation is a status
// transition.  Check-in and check-out are calendar dates stored as
// DATE columns in UTC.
//
// Fields:
//  ID              – primary key identifier.
//  Reference       – UUID reference code shown to clients.
//  UserID          – user who made the booking.
//  RoomID          – room type pool being booked.
//  CheckIn         – first night (inclusive).
//  CheckOut        – departure date (exclusive, strictly after CheckIn).
//  Guests          – number of guests (1..10).
//  TotalPriceCents – nights × nightly price, computed at creation.
//  Status          – lifecycle state (PENDING..COMPLETED).
//  CreatedAt       – creation timestamp.
//  UpdatedAt       – last update timestamp.
type Booking struct {
    ID              uint64        `json:"id"`                // bookings.id
    Reference       string        `json:"reference"`         // bookings.reference
    UserID          uint64        `json:"user_id"`           // bookings.user_id
    RoomID          uint64        `json:"room_id"`           // bookings.room_id
    CheckIn         time.Time     `json:"checkin"`           // bookings.check_in (DATE)
    CheckOut        time.Time     `json:"checkout"`          // bookings.check_out (DATE)
    Guests          uint8         `json:"guests"`            // bookings.guests
    TotalPriceCents uint64        `json:"total_price_cents"` // bookings.total_price_cents
    Status          BookingStatus `json:"status"`            // bookings.status
    CreatedAt       time.Time     `json:"created_at"`        // bookings.created_at
    UpdatedAt       time.Time     `json:"updated_at"`        // bookings.updated_at
}

// Nights returns the length of the stay in whole nights for the
// half-open range [CheckIn, CheckOut).
func (b *Booking) Nights() int {
    return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}
