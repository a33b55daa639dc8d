// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingEvent is published when a booking is created or cancelled.
// It contains enough information for downstream consumers to log,
// notify, or trigger analytics without querying the primary database.
type BookingEvent struct {
    BookingID       uint64 `json:"booking_id"`
    Reference       string `json:"reference"`
    UserID          uint64 `json:"user_id"`
    RoomID          uint64 `json:"room_id"`
    CheckIn         string `json:"checkin"`
    CheckOut        string `json:"checkout"`
    Guests          uint8  `json:"guests"`
    TotalPriceCents uint64 `json:"total_price_cents"`
    Status          string `json:"status"`
    OccurredAt      string `json:"occurred_at"`
}

// Queue names for booking lifecycle events.
const (
    QueueBookingCreated   = "booking.created"
    QueueBookingCancelled = "booking.cancelled"
)
