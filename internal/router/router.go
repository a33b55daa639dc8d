package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4" // import the Echo web framework to handle routing

    "github.com/roomstack/hotel-booking/internal/handler"    // import the handlers that implement business logic
    "github.com/roomstack/hotel-booking/internal/middleware" // import middleware for JWT authentication and role enforcement
    "github.com/roomstack/hotel-booking/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    // Load balancers and monitoring systems use this to verify the
    // service is up.
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware.  Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    // Operations that do not require an existing session: register,
    // login, refresh.  Each handler generates or exchanges tokens.
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Refresh rotates the refresh token: the presented token is revoked
    // and a new pair is issued.
    g.POST("/refresh", a.Refresh)
    // Logout accepts a JSON body containing a `refresh_token` and
    // invalidates it.  No JWT is required so expired sessions can still
    // be terminated cleanly.
    g.POST("/logout", a.Logout)

    // Routes that require a valid access token.  Both roles may call
    // /v1/me; the middleware rejects missing or unknown roles.
    auth := e.Group("/v1")
    auth.Use(middleware.JWTAuth(jwtSecret))
    auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleCustomer))
    auth.GET("/me", a.Me)
}

// RegisterPublic registers unauthenticated browse endpoints on the
// provided Echo instance.  These routes apply no JWT or role middleware
// so guests can explore hotels and room availability before signing up.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler) {
    // Hotel catalogue
    e.GET("/v1/hotels", p.ListHotels)
    e.GET("/v1/hotels/:id", p.GetHotel)
    // Rooms of a specific hotel
    e.GET("/v1/hotels/:id/rooms", p.ListRoomsByHotel)
    // Room details by room id
    e.GET("/v1/rooms/:id", p.GetRoom)
    // Availability for a date range.  Computed from the live set of
    // overlapping bookings on every request; never served stale.
    e.GET("/v1/rooms/:id/availability", p.CheckAvailability)
}
