package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/repository"
)

// RoomHandler exposes administrative CRUD over rooms.  A room row is a
// pool of interchangeable units of one type within one hotel; the
// available_rooms field is an advertised hint only and never feeds the
// availability checker.
type RoomHandler struct {
    Hotels *repository.HotelRepo
    Rooms  *repository.RoomRepo
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(hotels *repository.HotelRepo, rooms *repository.RoomRepo) *RoomHandler {
    if hotels == nil || rooms == nil {
        panic("nil repository passed to NewRoomHandler")
    }
    return &RoomHandler{Hotels: hotels, Rooms: rooms}
}

type roomReq struct {
    RoomType       string  `json:"room_type"`
    PriceCents     uint32  `json:"price_cents"`
    TotalRooms     uint32  `json:"total_rooms"`
    AvailableRooms *uint32 `json:"available_rooms"` // defaults to total_rooms when omitted
}

// validate normalizes the request and reports the first problem found.
func (r *roomReq) validate() (model.RoomType, string) {
    rt := model.RoomType(strings.ToUpper(strings.TrimSpace(r.RoomType)))
    if !rt.Valid() {
        return "", "room_type must be one of SINGLE, DOUBLE, SUITE, DELUXE, PRESIDENTIAL"
    }
    if r.TotalRooms == 0 {
        return "", "total_rooms must be at least 1"
    }
    if r.AvailableRooms != nil && *r.AvailableRooms > r.TotalRooms {
        return "", "available_rooms must not exceed total_rooms"
    }
    return rt, ""
}

// Create handles POST /v1/admin/hotels/:id/rooms.
func (h *RoomHandler) Create(c echo.Context) error {
    hotelID, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid hotel id")
    }
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "invalid request body")
    }
    rt, msg := req.validate()
    if msg != "" {
        return errJSON(c, http.StatusBadRequest, "invalid_body", msg)
    }
    ctx := c.Request().Context()
    if _, err := h.Hotels.GetByID(ctx, hotelID); err != nil {
        return repoError(c, err)
    }
    avail := req.TotalRooms
    if req.AvailableRooms != nil {
        avail = *req.AvailableRooms
    }
    room := &model.Room{
        HotelID:        hotelID,
        RoomType:       rt,
        PriceCents:     req.PriceCents,
        TotalRooms:     req.TotalRooms,
        AvailableRooms: avail,
    }
    if err := h.Rooms.Create(ctx, room); err != nil {
        return errJSON(c, http.StatusInternalServerError, "internal", "create room failed")
    }
    return c.JSON(http.StatusCreated, room)
}

// Update handles PUT /v1/admin/rooms/:id.
func (h *RoomHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid room id")
    }
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "invalid request body")
    }
    rt, msg := req.validate()
    if msg != "" {
        return errJSON(c, http.StatusBadRequest, "invalid_body", msg)
    }
    ctx := c.Request().Context()
    room, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        return repoError(c, err)
    }
    room.RoomType = rt
    room.PriceCents = req.PriceCents
    room.TotalRooms = req.TotalRooms
    if req.AvailableRooms != nil {
        room.AvailableRooms = *req.AvailableRooms
    } else if room.AvailableRooms > room.TotalRooms {
        room.AvailableRooms = room.TotalRooms
    }
    if err := h.Rooms.Update(ctx, room); err != nil {
        return repoError(c, err)
    }
    return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/admin/rooms/:id.  Rooms with live
// bookings yield 409.
func (h *RoomHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid room id")
    }
    if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
        return repoError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
