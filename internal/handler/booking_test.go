package handler

import (
    "encoding/json"
    "fmt"
    "net/http"
    "net/http/httptest"
    "strings"
    "testing"

    "github.com/labstack/echo/v4"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/storage/memory"
)

func newBookingHandler(t *testing.T) *BookingHandler {
    t.Helper()
    st := memory.New()
    st.AddRoom(&model.Room{
        ID:         1,
        HotelID:    1,
        RoomType:   model.RoomSingle,
        PriceCents: 1500,
        TotalRooms: 1,
    })
    return NewBookingHandler(booking.New(st))
}

// call invokes an echo handler directly with an optional JSON body,
// authenticated as the given user.
func call(t *testing.T, h echo.HandlerFunc, method, target, body string, userID uint64, params map[string]string) *httptest.ResponseRecorder {
    t.Helper()
    e := echo.New()
    req := httptest.NewRequest(method, target, strings.NewReader(body))
    if body != "" {
        req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
    }
    rec := httptest.NewRecorder()
    c := e.NewContext(req, rec)
    c.Set("user_id", userID)
    c.Set("role", string(model.RoleCustomer))
    names := make([]string, 0, len(params))
    values := make([]string, 0, len(params))
    for k, v := range params {
        names = append(names, k)
        values = append(values, v)
    }
    c.SetParamNames(names...)
    c.SetParamValues(values...)
    if err := h(c); err != nil {
        t.Fatalf("handler returned error: %v", err)
    }
    return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
    t.Helper()
    var body struct {
        Error string `json:"error"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("decode error body: %v", err)
    }
    return body.Error
}

func TestBookingCreate(t *testing.T) {
    h := newBookingHandler(t)
    body := `{"room_id":1,"checkin":"2026-10-01","checkout":"2026-10-03","guests":2}`
    rec := call(t, h.Create, http.MethodPost, "/v1/bookings", body, 7, nil)
    if rec.Code != http.StatusCreated {
        t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
    }
    var b model.Booking
    if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
        t.Fatalf("decode booking: %v", err)
    }
    if b.Status != model.StatusPending {
        t.Fatalf("status = %s, want PENDING", b.Status)
    }
    if b.TotalPriceCents != 3000 {
        t.Fatalf("total = %d, want 3000", b.TotalPriceCents)
    }
}

func TestBookingCreateBadDates(t *testing.T) {
    h := newBookingHandler(t)
    cases := []struct {
        name string
        body string
        code string
    }{
        {"malformed checkin", `{"room_id":1,"checkin":"10/01/2026","checkout":"2026-10-03","guests":2}`, "invalid_range"},
        {"reversed range", `{"room_id":1,"checkin":"2026-10-05","checkout":"2026-10-01","guests":2}`, "invalid_range"},
        {"missing room", `{"checkin":"2026-10-01","checkout":"2026-10-03","guests":2}`, "invalid_body"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            rec := call(t, h.Create, http.MethodPost, "/v1/bookings", tc.body, 7, nil)
            if rec.Code != http.StatusBadRequest {
                t.Fatalf("status = %d, want 400", rec.Code)
            }
            if got := errorCode(t, rec); got != tc.code {
                t.Fatalf("error = %s, want %s", got, tc.code)
            }
        })
    }
}

func TestBookingCreateConflict(t *testing.T) {
    h := newBookingHandler(t)
    body := `{"room_id":1,"checkin":"2026-10-01","checkout":"2026-10-05","guests":2}`
    if rec := call(t, h.Create, http.MethodPost, "/v1/bookings", body, 7, nil); rec.Code != http.StatusCreated {
        t.Fatalf("first booking: status = %d", rec.Code)
    }
    rec := call(t, h.Create, http.MethodPost, "/v1/bookings", body, 8, nil)
    if rec.Code != http.StatusConflict {
        t.Fatalf("status = %d, want 409: %s", rec.Code, rec.Body.String())
    }
    if got := errorCode(t, rec); got != "room_unavailable" {
        t.Fatalf("error = %s, want room_unavailable", got)
    }
}

func TestBookingCancelFlow(t *testing.T) {
    h := newBookingHandler(t)
    body := `{"room_id":1,"checkin":"2026-10-01","checkout":"2026-10-03","guests":1}`
    rec := call(t, h.Create, http.MethodPost, "/v1/bookings", body, 7, nil)
    if rec.Code != http.StatusCreated {
        t.Fatalf("create: status = %d", rec.Code)
    }
    var b model.Booking
    if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
        t.Fatalf("decode booking: %v", err)
    }
    id := fmt.Sprintf("%d", b.ID)

    // A different customer must not see or cancel it.
    if rec := call(t, h.Get, http.MethodGet, "/v1/bookings/"+id, "", 8, map[string]string{"id": id}); rec.Code != http.StatusForbidden {
        t.Fatalf("stranger get: status = %d, want 403", rec.Code)
    }
    if rec := call(t, h.Cancel, http.MethodPut, "/v1/bookings/"+id+"/cancel", "", 8, map[string]string{"id": id}); rec.Code != http.StatusForbidden {
        t.Fatalf("stranger cancel: status = %d, want 403", rec.Code)
    }

    rec = call(t, h.Cancel, http.MethodPut, "/v1/bookings/"+id+"/cancel", "", 7, map[string]string{"id": id})
    if rec.Code != http.StatusOK {
        t.Fatalf("cancel: status = %d, want 200", rec.Code)
    }

    rec = call(t, h.Cancel, http.MethodPut, "/v1/bookings/"+id+"/cancel", "", 7, map[string]string{"id": id})
    if rec.Code != http.StatusConflict {
        t.Fatalf("second cancel: status = %d, want 409", rec.Code)
    }
    if got := errorCode(t, rec); got != "already_cancelled" {
        t.Fatalf("error = %s, want already_cancelled", got)
    }
}

func TestMyBookingsEmpty(t *testing.T) {
    h := newBookingHandler(t)
    rec := call(t, h.List, http.MethodGet, "/v1/my-bookings", "", 7, nil)
    if rec.Code != http.StatusOK {
        t.Fatalf("status = %d, want 200", rec.Code)
    }
    var body struct {
        Items []json.RawMessage `json:"items"`
    }
    if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
        t.Fatalf("decode: %v", err)
    }
    if body.Items == nil || len(body.Items) != 0 {
        t.Fatalf("items = %v, want empty array", body.Items)
    }
}
