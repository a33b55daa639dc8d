package router // router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/handler"    // admin handlers
    "github.com/roomstack/hotel-booking/internal/middleware" // JWT + role middlewares
    "github.com/roomstack/hotel-booking/internal/model"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, hotels *handler.HotelHandler, rooms *handler.RoomHandler, bookings *handler.AdminBookingHandler, jwtSecret string) {
    // Attach middlewares at group construction time for clarity.
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    // ---- Hotels ----
    g.POST("/hotels", hotels.Create)
    // Listing hotels is handled by the public browse API.
    g.PUT("/hotels/:id", hotels.Update)
    g.PATCH("/hotels/:id", hotels.Update) // allow partial/semantic updates via PATCH as well
    g.DELETE("/hotels/:id", hotels.Delete)

    // ---- Rooms ----
    g.POST("/hotels/:id/rooms", rooms.Create)
    g.PUT("/rooms/:id", rooms.Update)
    g.PATCH("/rooms/:id", rooms.Update)
    g.DELETE("/rooms/:id", rooms.Delete)

    // ---- Bookings ----
    // Explicit lifecycle transition (confirm, complete, cancel).
    g.PUT("/bookings/:id/status", bookings.UpdateStatus)
    // Occupancy review: every booking for a room, any status.
    g.GET("/rooms/:id/bookings", bookings.ListByRoom)
}
