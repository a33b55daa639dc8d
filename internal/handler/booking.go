package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/queue"
    queue_publisher "github.com/roomstack/hotel-booking/internal/service"
)

// BookingHandler exposes the customer-facing booking endpoints.  All
// methods assume JWT authentication and role validation have already
// been performed by middleware; the verified identity and role are
// read once and passed into the booking service explicitly.
type BookingHandler struct {
    Svc *booking.Service
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *booking.Service) *BookingHandler {
    if svc == nil {
        panic("nil service passed to NewBookingHandler")
    }
    return &BookingHandler{Svc: svc}
}

type createBookingReq struct {
    RoomID   uint64 `json:"room_id"`
    CheckIn  string `json:"checkin"`
    CheckOut string `json:"checkout"`
    Guests   int    `json:"guests"`
}

// Publish hooks are package variables so tests can intercept the
// asynchronous event flow.
var (
    publishCreated   = queue_publisher.PublishBookingCreated
    publishCancelled = queue_publisher.PublishBookingCancelled
)

// publishEvent emits a booking lifecycle event without blocking the
// request; delivery failures are logged inside the publisher and
// otherwise ignored.
func publishEvent(b *model.Booking, created bool) {
    ev := queue.BookingEvent{
        BookingID:       b.ID,
        Reference:       b.Reference,
        UserID:          b.UserID,
        RoomID:          b.RoomID,
        CheckIn:         b.CheckIn.Format(dateLayout),
        CheckOut:        b.CheckOut.Format(dateLayout),
        Guests:          b.Guests,
        TotalPriceCents: b.TotalPriceCents,
        Status:          string(b.Status),
        OccurredAt:      time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        if created {
            _ = publishCreated(ctx, ev)
        } else {
            _ = publishCancelled(ctx, ev)
        }
    }()
}

// Create handles POST /v1/bookings.  The availability check and the
// insert run atomically inside the booking service; on success the
// new booking is returned with status PENDING.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
    }
    var req createBookingReq
    if err := c.Bind(&req); err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "invalid request body")
    }
    if req.RoomID == 0 {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "room_id is required")
    }
    checkIn, err := parseDate(req.CheckIn)
    if err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_range", "checkin must be a YYYY-MM-DD date")
    }
    checkOut, err := parseDate(req.CheckOut)
    if err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_range", "checkout must be a YYYY-MM-DD date")
    }

    b, err := h.Svc.CreateBooking(c.Request().Context(), userID, req.RoomID, checkIn, checkOut, req.Guests)
    if err != nil {
        return bookingError(c, err)
    }
    publishEvent(b, true)
    return c.JSON(http.StatusCreated, b)
}

// List handles GET /v1/my-bookings.  It returns all bookings created
// by the current user, newest first; an empty array when none exist.
func (h *BookingHandler) List(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
    }
    items, err := h.Svc.ListForUser(c.Request().Context(), userID)
    if err != nil {
        return errJSON(c, http.StatusInternalServerError, "internal", "failed to load bookings")
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Get handles GET /v1/bookings/:id.  Owners see their own bookings;
// admins see any.
func (h *BookingHandler) Get(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
    }
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid booking id")
    }
    b, err := h.Svc.GetBookingFor(c.Request().Context(), userID, getRole(c), id)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"item": b})
}

// Cancel handles PUT /v1/bookings/:id/cancel.  The actor must be the
// booking's owner or an admin; the transition to CANCELLED is
// terminal.
func (h *BookingHandler) Cancel(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return errJSON(c, http.StatusUnauthorized, "unauthorized", "unauthorized")
    }
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid booking id")
    }
    b, err := h.Svc.CancelBooking(c.Request().Context(), userID, getRole(c), id)
    if err != nil {
        return bookingError(c, err)
    }
    publishEvent(b, false)
    return c.JSON(http.StatusOK, b)
}
