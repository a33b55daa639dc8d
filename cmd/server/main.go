package main // Entry point package

import (
    "log" // Logging library

    "github.com/joho/godotenv"    // loads .env files in development
    "github.com/labstack/echo/v4" // Echo web framework

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/config"
    "github.com/roomstack/hotel-booking/internal/database"
    "github.com/roomstack/hotel-booking/internal/handler"
    "github.com/roomstack/hotel-booking/internal/middleware"
    "github.com/roomstack/hotel-booking/internal/queue"
    "github.com/roomstack/hotel-booking/internal/repository"
    "github.com/roomstack/hotel-booking/internal/router"
    "github.com/roomstack/hotel-booking/internal/storage/mysql"
)

func main() {
    // .env is optional; real deployments set variables in the environment.
    _ = godotenv.Load()

    cfg := config.Load()

    db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
    if err != nil {
        log.Fatalf("db connect failed: %v", err)
    }
    defer db.Close()

    // Repositories over the shared connection pool.
    userRepo := repository.NewUserRepo(db)
    tokenRepo := repository.NewTokenRepo(db)
    hotelRepo := repository.NewHotelRepo(db)
    roomRepo := repository.NewRoomRepo(db)
    bookingRepo := repository.NewBookingRepo(db)

    // The booking service owns availability math and the booking
    // lifecycle; it talks to MySQL through the storage port.
    store := mysql.New(db, roomRepo, bookingRepo)
    bookingSvc := booking.New(store)

    // Handlers.
    authH := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
    publicH := handler.NewPublicHandler(hotelRepo, roomRepo, bookingSvc)
    hotelH := handler.NewHotelHandler(hotelRepo)
    roomH := handler.NewRoomHandler(hotelRepo, roomRepo)
    bookingH := handler.NewBookingHandler(bookingSvc)
    adminBookingH := handler.NewAdminBookingHandler(bookingSvc)

    e := echo.New()
    e.HideBanner = true

    // Redis backs the response cache and the rate limiter.  When the
    // client is nil (connection failed) both middlewares turn into
    // no-ops so the API keeps serving.
    rdb := config.NewRedisClient()
    if rdb == nil {
        log.Println("redis unavailable; cache and rate limiting disabled")
    }
    e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
    e.Use(middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

    router.RegisterRoutes(e)
    router.RegisterAuth(e, authH, cfg.JWTSecret)
    router.RegisterPublic(e, publicH)
    router.RegisterCustomer(e, bookingH, cfg.JWTSecret)
    router.RegisterAdmin(e, hotelH, roomH, adminBookingH, cfg.JWTSecret)

    // Background consumer for booking lifecycle events.  It reconnects
    // on broker failures and never takes the API down.
    go func() {
        if err := queue.StartBookingConsumer(); err != nil {
            log.Printf("booking consumer stopped: %v", err)
        }
    }()

    addr := ":" + cfg.Port
    log.Printf("listening on %s (env=%s)", addr, cfg.Env)
    if err := e.Start(addr); err != nil {
        log.Fatal(err)
    }
}
