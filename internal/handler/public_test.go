package handler

import (
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/storage/memory"
)

func checkAvailability(t *testing.T, h *PublicHandler, roomID, checkin, checkout string) (int, map[string]any) {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/rooms/"+roomID+"/availability?checkin="+checkin+"&checkout="+checkout, nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetParamNames("id")
    c.SetParamValues(roomID)
    if err := h.CheckAvailability(c); err != nil {
        t.Fatalf("CheckAvailability: %v", err)
    }
    var body map[string]any
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("decode: %v", err)
    }
    return rec.Code, body
}

// Every availability answer must reflect bookings committed since the
// previous one.
func TestAvailabilityRecomputedPerRequest(t *testing.T) {
    st := memory.New()
    st.AddRoom(&model.Room{ID: 1, HotelID: 1, RoomType: model.RoomSingle, PriceCents: 1500, TotalRooms: 1})
    svc := booking.New(st)
    h := &PublicHandler{Bookings: svc}

    code, body := checkAvailability(t, h, "1", "2026-10-01", "2026-10-03")
    if code != http.StatusOK {
        t.Fatalf("status = %d, want 200", code)
    }
    if body["available_rooms"].(float64) != 1 || body["is_available"] != true {
        t.Fatalf("before booking: %v", body)
    }

    in, _ := time.Parse("2006-01-02", "2026-10-01")
    out, _ := time.Parse("2006-01-02", "2026-10-03")
    if _, err := svc.CreateBooking(context.Background(), 7, 1, in, out, 1); err != nil {
        t.Fatalf("CreateBooking: %v", err)
    }

    code, body = checkAvailability(t, h, "1", "2026-10-01", "2026-10-03")
    if code != http.StatusOK {
        t.Fatalf("status = %d, want 200", code)
    }
    if body["available_rooms"].(float64) != 0 || body["is_available"] != false {
        t.Fatalf("after booking: %v", body)
    }
    if body["booked_rooms"].(float64) != 1 {
        t.Fatalf("booked_rooms = %v, want 1", body["booked_rooms"])
    }
}

func TestAvailabilityBadQuery(t *testing.T) {
    st := memory.New()
    st.AddRoom(&model.Room{ID: 1, HotelID: 1, RoomType: model.RoomSingle, PriceCents: 1500, TotalRooms: 1})
    h := &PublicHandler{Bookings: booking.New(st)}

    e := echo.New()
    req := httptest.NewRequest(http.MethodGet, "/v1/rooms/1/availability?checkin=bogus&checkout=2026-10-03", nil)
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.SetParamNames("id")
    c.SetParamValues("1")
    if err := h.CheckAvailability(c); err != nil {
        t.Fatalf("CheckAvailability: %v", err)
    }
    if rec.Code != http.StatusBadRequest {
        t.Fatalf("status = %d, want 400", rec.Code)
    }
    if got := errorCode(t, rec); got != "invalid_range" {
        t.Fatalf("error = %s, want invalid_range", got)
    }
}
