package middleware

import (
    "fmt"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/roomstack/hotel-booking/internal/config"
)

func TestCacheablePath(t *testing.T) {
    cases := []struct {
        route string
        want  bool
    }{
        {"/v1/hotels", true},
        {"/v1/hotels/:id", true},
        {"/v1/hotels/:id/rooms", true},
        {"/v1/rooms/:id", true},
        {"/v1/rooms/:id/availability", false},
    }
    for _, tc := range cases {
        if got := cacheablePath(tc.route); got != tc.want {
            t.Errorf("cacheablePath(%q) = %v, want %v", tc.route, got, tc.want)
        }
    }
}

func TestCacheNeverReplaysAvailability(t *testing.T) {
    // An unreachable Redis makes every lookup miss; the point here is
    // that the handler runs on each availability request with the
    // middleware active, and the responses differ.
    rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond})
    cfg := config.CacheConfig{
        Enabled:     true,
        Methods:     map[string]bool{"GET": true},
        TTL:         time.Minute,
        KeyStrategy: "route_query",
        Prefix:      "t",
    }

    e := echo.New()
    calls := 0
    e.GET("/v1/rooms/:id/availability", func(c echo.Context) error {
        calls++
        return c.String(http.StatusOK, fmt.Sprintf("call %d", calls))
    }, NewRedisCache(cfg, rdb))

    for i := 1; i <= 2; i++ {
        req := httptest.NewRequest(http.MethodGet, "/v1/rooms/1/availability?checkin=2026-10-01&checkout=2026-10-03", nil)
        rec := httptest.NewRecorder()
        e.ServeHTTP(rec, req)
        if rec.Code != http.StatusOK {
            t.Fatalf("request %d: status = %d", i, rec.Code)
        }
        if want := fmt.Sprintf("call %d", i); rec.Body.String() != want {
            t.Fatalf("request %d: body = %q, want %q", i, rec.Body.String(), want)
        }
    }
    if calls != 2 {
        t.Fatalf("handler ran %d times, want 2", calls)
    }
}
