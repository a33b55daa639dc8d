// Package memory provides an in-process implementation of the booking
// Store port.  It backs package tests and local development without a
// MySQL instance.  A single mutex serializes transactions, which is
// enough to preserve the check-then-insert atomicity the booking
// writer relies on.
package memory

import (
    "context"
    "sort"
    "sync"
    "time"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
)

// Store keeps rooms and bookings in maps guarded by a mutex.
type Store struct {
    mu            sync.Mutex
    rooms         map[uint64]*model.Room
    bookings      map[uint64]*model.Booking
    nextBookingID uint64
}

// New returns an empty Store.
func New() *Store {
    return &Store{
        rooms:         make(map[uint64]*model.Room),
        bookings:      make(map[uint64]*model.Booking),
        nextBookingID: 1,
    }
}

// AddRoom registers a room.  Intended for fixtures and local setups.
func (s *Store) AddRoom(r *model.Room) {
    s.mu.Lock()
    defer s.mu.Unlock()
    cp := *r
    s.rooms[cp.ID] = &cp
}

// overlaps applies the half-open interval test to a stored booking in
// a counting state.
func overlaps(b *model.Booking, checkIn, checkOut time.Time) bool {
    if b.Status != model.StatusPending && b.Status != model.StatusConfirmed {
        return false
    }
    return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

func (s *Store) GetRoom(_ context.Context, roomID uint64) (*model.Room, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    r, ok := s.rooms[roomID]
    if !ok {
        return nil, booking.ErrRoomNotFound
    }
    cp := *r
    return &cp, nil
}

func (s *Store) GetBooking(_ context.Context, bookingID uint64) (*model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    b, ok := s.bookings[bookingID]
    if !ok {
        return nil, booking.ErrBookingNotFound
    }
    cp := *b
    return &cp, nil
}

func (s *Store) ListBookingsByUser(_ context.Context, userID uint64) ([]*model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    out := make([]*model.Booking, 0)
    for _, b := range s.bookings {
        if b.UserID == userID {
            cp := *b
            out = append(out, &cp)
        }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
    return out, nil
}

func (s *Store) ListBookingsByRoom(_ context.Context, roomID uint64) ([]*model.Booking, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    out := make([]*model.Booking, 0)
    for _, b := range s.bookings {
        if b.RoomID == roomID {
            cp := *b
            out = append(out, &cp)
        }
    }
    sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
    return out, nil
}

func (s *Store) CountOverlapping(_ context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    return s.countOverlappingLocked(roomID, checkIn, checkOut), nil
}

func (s *Store) countOverlappingLocked(roomID uint64, checkIn, checkOut time.Time) uint32 {
    var n uint32
    for _, b := range s.bookings {
        if b.RoomID == roomID && overlaps(b, checkIn, checkOut) {
            n++
        }
    }
    return n
}

func (s *Store) UpdateBookingStatus(_ context.Context, bookingID uint64, status model.BookingStatus) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    b, ok := s.bookings[bookingID]
    if !ok {
        return booking.ErrBookingNotFound
    }
    b.Status = status
    b.UpdatedAt = time.Now().UTC()
    return nil
}

// tx holds the store mutex for its whole lifetime, mirroring the row
// lock the MySQL store takes with SELECT ... FOR UPDATE.
type tx struct {
    s        *Store
    inserted []*model.Booking
    done     bool
}

func (s *Store) Begin(_ context.Context) (booking.Tx, error) {
    s.mu.Lock()
    return &tx{s: s}, nil
}

func (t *tx) LockRoom(_ context.Context, roomID uint64) (*model.Room, error) {
    r, ok := t.s.rooms[roomID]
    if !ok {
        return nil, booking.ErrRoomNotFound
    }
    cp := *r
    return &cp, nil
}

func (t *tx) CountOverlapping(_ context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    return t.s.countOverlappingLocked(roomID, checkIn, checkOut), nil
}

func (t *tx) InsertBooking(_ context.Context, b *model.Booking) error {
    b.ID = t.s.nextBookingID
    t.s.nextBookingID++
    now := time.Now().UTC()
    b.CreatedAt = now
    b.UpdatedAt = now
    cp := *b
    t.s.bookings[cp.ID] = &cp
    t.inserted = append(t.inserted, &cp)
    return nil
}

func (t *tx) Commit() error {
    if t.done {
        return nil
    }
    t.done = true
    t.inserted = nil
    t.s.mu.Unlock()
    return nil
}

func (t *tx) Rollback() error {
    if t.done {
        return nil
    }
    t.done = true
    for _, b := range t.inserted {
        delete(t.s.bookings, b.ID)
    }
    t.inserted = nil
    t.s.mu.Unlock()
    return nil
}
