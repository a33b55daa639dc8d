package handler

import (
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/repository"
)

// dateLayout is the wire format for check-in/check-out calendar dates.
const dateLayout = "2006-01-02"

// getUserID extracts the user_id set by the JWT middleware and
// converts it to uint64.
func getUserID(c echo.Context) (uint64, error) {
    v := c.Get("user_id")
    switch t := v.(type) {
    case uint64:
        return t, nil
    case int:
        return uint64(t), nil
    case int64:
        return uint64(t), nil
    case float64:
        return uint64(t), nil
    case string:
        if n, err := strconv.ParseUint(t, 10, 64); err == nil {
            return n, nil
        }
    }
    return 0, errors.New("invalid user_id in context")
}

// getRole resolves the role claim set by the JWT middleware into the
// explicit Role enumeration.  An unknown or missing role resolves to
// CUSTOMER, the least privileged capability.
func getRole(c echo.Context) model.Role {
    if s, ok := c.Get("role").(string); ok {
        r := model.Role(s)
        if r.Valid() {
            return r
        }
    }
    return model.RoleCustomer
}

// parseDate parses a calendar date in ISO-8601 (YYYY-MM-DD) form.
func parseDate(s string) (time.Time, error) {
    return time.Parse(dateLayout, s)
}

// errJSON writes the structured {error, message} payload used by every
// failure response.
func errJSON(c echo.Context, status int, code, message string) error {
    return c.JSON(status, echo.Map{"error": code, "message": message})
}

// bookingError maps booking service sentinels onto HTTP responses.
// Unknown errors become a 500 internal failure.
func bookingError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, booking.ErrRoomNotFound):
        return errJSON(c, http.StatusNotFound, "not_found", "room not found")
    case errors.Is(err, booking.ErrBookingNotFound):
        return errJSON(c, http.StatusNotFound, "not_found", "booking not found")
    case errors.Is(err, booking.ErrInvalidRange):
        return errJSON(c, http.StatusBadRequest, "invalid_range", "checkout must be after checkin and guests must be between 1 and 10")
    case errors.Is(err, booking.ErrRoomUnavailable):
        return errJSON(c, http.StatusConflict, "room_unavailable", "no rooms available for the requested dates")
    case errors.Is(err, booking.ErrForbidden):
        return errJSON(c, http.StatusForbidden, "forbidden", "you do not have access to this booking")
    case errors.Is(err, booking.ErrAlreadyCancelled):
        return errJSON(c, http.StatusConflict, "already_cancelled", "booking is already cancelled")
    case errors.Is(err, booking.ErrCannotCancel):
        return errJSON(c, http.StatusConflict, "cannot_cancel", "completed bookings cannot be cancelled")
    case errors.Is(err, booking.ErrInvalidTransition):
        return errJSON(c, http.StatusBadRequest, "invalid_status", "status transition not allowed")
    }
    return errJSON(c, http.StatusInternalServerError, "internal", "internal error")
}

// repoError maps repository sentinels onto HTTP responses for the
// hotel/room CRUD handlers.
func repoError(c echo.Context, err error) error {
    switch {
    case errors.Is(err, repository.ErrHotelNotFound):
        return errJSON(c, http.StatusNotFound, "not_found", "hotel not found")
    case errors.Is(err, repository.ErrRoomNotFound):
        return errJSON(c, http.StatusNotFound, "not_found", "room not found")
    case errors.Is(err, repository.ErrConflict):
        return errJSON(c, http.StatusConflict, "conflict", "resource has dependent records")
    }
    return errJSON(c, http.StatusInternalServerError, "internal", "internal error")
}

// pathID parses a numeric :id style path parameter.
func pathID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}
