package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
)

// AdminBookingHandler exposes the admin-only booking endpoints: the
// explicit status transition and the per-room booking listing used
// for occupancy review.
type AdminBookingHandler struct {
    Svc *booking.Service
}

// NewAdminBookingHandler constructs an AdminBookingHandler.
func NewAdminBookingHandler(svc *booking.Service) *AdminBookingHandler {
    if svc == nil {
        panic("nil service passed to NewAdminBookingHandler")
    }
    return &AdminBookingHandler{Svc: svc}
}

type statusReq struct {
    Status string `json:"status"`
}

// UpdateStatus handles PUT /v1/admin/bookings/:id/status.  Only
// transitions allowed by the booking lifecycle are accepted;
// everything else yields invalid_status.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid booking id")
    }
    var req statusReq
    if err := c.Bind(&req); err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "invalid request body")
    }
    next := model.BookingStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
    b, err := h.Svc.UpdateStatus(c.Request().Context(), id, next)
    if err != nil {
        return bookingError(c, err)
    }
    // Admin-initiated cancellations feed the same event stream as
    // owner cancellations.
    if b.Status == model.StatusCancelled {
        publishEvent(b, false)
    }
    return c.JSON(http.StatusOK, b)
}

// ListByRoom handles GET /v1/admin/rooms/:id/bookings.  The room must
// exist; the result includes bookings in every status, newest first.
func (h *AdminBookingHandler) ListByRoom(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid room id")
    }
    items, err := h.Svc.ListForRoom(c.Request().Context(), id)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
