package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/repository"
)

// HotelHandler exposes administrative CRUD over hotels.  All methods
// assume the ADMIN role has been enforced by middleware.
type HotelHandler struct {
    Hotels *repository.HotelRepo
}

// NewHotelHandler constructs a HotelHandler.
func NewHotelHandler(hotels *repository.HotelRepo) *HotelHandler {
    if hotels == nil {
        panic("nil repository passed to NewHotelHandler")
    }
    return &HotelHandler{Hotels: hotels}
}

type hotelReq struct {
    Name    string `json:"name"`
    City    string `json:"city"`
    Address string `json:"address"`
}

func (r *hotelReq) normalize() bool {
    r.Name = strings.TrimSpace(r.Name)
    r.City = strings.TrimSpace(r.City)
    r.Address = strings.TrimSpace(r.Address)
    return r.Name != "" && r.City != ""
}

// Create handles POST /v1/admin/hotels.
func (h *HotelHandler) Create(c echo.Context) error {
    var req hotelReq
    if err := c.Bind(&req); err != nil || !req.normalize() {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "name and city are required")
    }
    hotel := &model.Hotel{Name: req.Name, City: req.City, Address: req.Address}
    if err := h.Hotels.Create(c.Request().Context(), hotel); err != nil {
        return errJSON(c, http.StatusInternalServerError, "internal", "create hotel failed")
    }
    return c.JSON(http.StatusCreated, hotel)
}

// Update handles PUT /v1/admin/hotels/:id.
func (h *HotelHandler) Update(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid hotel id")
    }
    var req hotelReq
    if err := c.Bind(&req); err != nil || !req.normalize() {
        return errJSON(c, http.StatusBadRequest, "invalid_body", "name and city are required")
    }
    hotel := &model.Hotel{ID: id, Name: req.Name, City: req.City, Address: req.Address}
    if err := h.Hotels.Update(c.Request().Context(), hotel); err != nil {
        return repoError(c, err)
    }
    return c.JSON(http.StatusOK, hotel)
}

// Delete handles DELETE /v1/admin/hotels/:id.  Hotels that still have
// rooms yield 409.
func (h *HotelHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return errJSON(c, http.StatusBadRequest, "invalid_id", "invalid hotel id")
    }
    if err := h.Hotels.Delete(c.Request().Context(), id); err != nil {
        return repoError(c, err)
    }
    return c.NoContent(http.StatusNoContent)
}
