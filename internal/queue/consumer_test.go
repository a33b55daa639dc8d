package queue

import (
    "encoding/json"
    "os"
    "path/filepath"
    "strings"
    "testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
    t.Helper()
    old, err := os.Getwd()
    if err != nil {
        t.Fatal(err)
    }
    if err := os.Chdir(dir); err != nil {
        t.Fatal(err)
    }
    t.Cleanup(func() {
        if err := os.Chdir(old); err != nil {
            t.Fatal(err)
        }
    })
}

func TestHandleMessageWritesLog(t *testing.T) {
    chdir(t, t.TempDir())

    ev := BookingEvent{
        BookingID:       12,
        Reference:       "ref-12",
        UserID:          7,
        RoomID:          3,
        CheckIn:         "2026-10-01",
        CheckOut:        "2026-10-03",
        Guests:          2,
        TotalPriceCents: 4000,
        Status:          "PENDING",
        OccurredAt:      "2026-09-01T10:00:00Z",
    }
    body, err := json.Marshal(ev)
    if err != nil {
        t.Fatal(err)
    }
    if err := handleMessage(QueueBookingCreated, body); err != nil {
        t.Fatalf("handleMessage: %v", err)
    }

    data, err := os.ReadFile(filepath.Join("logs", "booking.log"))
    if err != nil {
        t.Fatalf("read log: %v", err)
    }
    line := string(data)
    for _, want := range []string{"Booking created", "booking_id=12", "ref-12", "2026-10-01..2026-10-03", "4000 cents"} {
        if !strings.Contains(line, want) {
            t.Errorf("log line missing %q: %s", want, line)
        }
    }

    if err := handleMessage(QueueBookingCancelled, body); err != nil {
        t.Fatalf("handleMessage cancelled: %v", err)
    }
    data, _ = os.ReadFile(filepath.Join("logs", "booking.log"))
    if !strings.Contains(string(data), "Booking cancelled") {
        t.Errorf("missing cancelled line: %s", data)
    }
}

func TestHandleMessageBadPayload(t *testing.T) {
    chdir(t, t.TempDir())
    if err := handleMessage(QueueBookingCreated, []byte("{not json")); err == nil {
        t.Fatal("expected error for malformed payload")
    }
}
