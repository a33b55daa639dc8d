package model

import (
    "testing"
    "time"
)

func TestBookingStatusValid(t *testing.T) {
    for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
        if !s.Valid() {
            t.Errorf("%s should be valid", s)
        }
    }
    for _, s := range []BookingStatus{"", "pending", "DELETED"} {
        if s.Valid() {
            t.Errorf("%q should be invalid", s)
        }
    }
}

func TestCanTransitionTo(t *testing.T) {
    cases := []struct {
        from, to BookingStatus
        ok       bool
    }{
        {StatusPending, StatusConfirmed, true},
        {StatusPending, StatusCancelled, true},
        {StatusPending, StatusCompleted, false},
        {StatusPending, StatusPending, false},
        {StatusConfirmed, StatusCancelled, true},
        {StatusConfirmed, StatusCompleted, true},
        {StatusConfirmed, StatusPending, false},
        {StatusCancelled, StatusPending, false},
        {StatusCancelled, StatusConfirmed, false},
        {StatusCompleted, StatusCancelled, false},
        {StatusCompleted, StatusConfirmed, false},
    }
    for _, tc := range cases {
        if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
            t.Errorf("%s -> %s = %v, want %v", tc.from, tc.to, got, tc.ok)
        }
    }
}

func TestNights(t *testing.T) {
    day := func(s string) time.Time {
        d, err := time.Parse("2006-01-02", s)
        if err != nil {
            t.Fatal(err)
        }
        return d
    }
    b := Booking{CheckIn: day("2026-10-01"), CheckOut: day("2026-10-04")}
    if b.Nights() != 3 {
        t.Fatalf("nights = %d, want 3", b.Nights())
    }
    one := Booking{CheckIn: day("2026-10-01"), CheckOut: day("2026-10-02")}
    if one.Nights() != 1 {
        t.Fatalf("nights = %d, want 1", one.Nights())
    }
}

func TestRoleAndRoomTypeValid(t *testing.T) {
    if !RoleAdmin.Valid() || !RoleCustomer.Valid() {
        t.Fatal("known roles should be valid")
    }
    if Role("OWNER").Valid() {
        t.Fatal("unknown role should be invalid")
    }
    if !RoomSuite.Valid() {
        t.Fatal("SUITE should be valid")
    }
    if RoomType("CABIN").Valid() {
        t.Fatal("unknown room type should be invalid")
    }
}
