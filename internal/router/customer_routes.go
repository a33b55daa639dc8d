package router

import (
    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/handler"
    "github.com/roomstack/hotel-booking/internal/middleware"
    "github.com/roomstack/hotel-booking/internal/model"
)

// RegisterCustomer registers booking endpoints under /v1.  All routes
// require a valid JWT; admins may also call them so support staff can
// inspect and cancel bookings on a customer's behalf.  Ownership checks
// happen inside the booking service.
func RegisterCustomer(e *echo.Echo, h *handler.BookingHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleCustomer, model.RoleAdmin),
    )
    g.POST("/bookings", h.Create)
    g.GET("/my-bookings", h.List)
    g.GET("/bookings/:id", h.Get)
    g.PUT("/bookings/:id/cancel", h.Cancel)
}
