package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/repository"
)

// PublicHandler exposes unauthenticated browse endpoints: hotel and
// room listings plus the room availability check.  These routes apply
// no JWT middleware so guests can explore inventory before signing up.
type PublicHandler struct {
    Hotels   *repository.HotelRepo
    Rooms    *repository.RoomRepo
    Bookings *booking.Service
}

// NewPublicHandler constructs a PublicHandler.
func NewPublicHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo, svc *booking.Service) *PublicHandler {
    if hotels == nil || rooms == nil || svc == nil {
        panic("nil dependency passed to NewPublicHandler")
    }
    return &PublicHandler{Hotels: hotels, Rooms: rooms, Bookings: svc}
}

// ListHotels handles GET /v1/hotels.
func (h *PublicHandler) ListHotels(c echo.Context) error {
    hotels, err := h.Hotels.List(c.Request().Context())
    if err != nil {
        return errJSON(c, http.StatusInternalServerError, "internal", "failed to load hotels")
    }
    return c.JSON(http.StatusOK, echo.Map{"items": hotels})
}

// GetHotel handles GET /v1/hotels/:id.
func (h *PublicHandler) GetHotel(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid hotel id")
    }
    hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
    if err != nil {
        return repoError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"item": hotel})
}

// ListRoomsByHotel handles GET /v1/hotels/:id/rooms.
func (h *PublicHandler) ListRoomsByHotel(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid hotel id")
    }
    ctx := c.Request().Context()
    if _, err := h.Hotels.GetByID(ctx, id); err != nil {
        return repoError(c, err)
    }
    rooms, err := h.Rooms.ListByHotel(ctx, id)
    if err != nil {
        return errJSON(c, http.StatusInternalServerError, "internal", "failed to load rooms")
    }
    return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *PublicHandler) GetRoom(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid room id")
    }
    room, err := h.Rooms.GetByID(c.Request().Context(), id)
    if err != nil {
        return repoError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{"item": room})
}

// CheckAvailability handles
// GET /v1/rooms/:id/availability?checkin=YYYY-MM-DD&checkout=YYYY-MM-DD.
// Availability is recomputed from the live set of overlapping bookings
// on every request; it is never cached as a source of truth.
func (h *PublicHandler) CheckAvailability(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid room id")
    }
    checkIn, err := parseDate(c.QueryParam("checkin"))
    if err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_range", "checkin must be a YYYY-MM-DD date")
    }
    checkOut, err := parseDate(c.QueryParam("checkout"))
    if err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_range", "checkout must be a YYYY-MM-DD date")
    }
    avail, err := h.Bookings.CheckAvailability(c.Request().Context(), id, checkIn, checkOut)
    if err != nil {
        return bookingError(c, err)
    }
    return c.JSON(http.StatusOK, echo.Map{
        "room_id":         avail.RoomID,
        "checkin":         avail.CheckIn.Format(dateLayout),
        "checkout":        avail.CheckOut.Format(dateLayout),
        "total_rooms":     avail.TotalRooms,
        "booked_rooms":    avail.BookedRooms,
        "available_rooms": avail.AvailableRooms,
        "is_available":    avail.IsAvailable,
    })
}
