// Package mysql adapts the repository layer to the booking Store
// port.  Repository sentinels are translated into the booking
// package's errors so the service never imports repository directly.
package mysql

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/roomstack/hotel-booking/internal/booking"
    "github.com/roomstack/hotel-booking/internal/model"
    "github.com/roomstack/hotel-booking/internal/repository"
)

// Store wires the room and booking repositories behind booking.Store.
type Store struct {
    db       *sql.DB
    rooms    *repository.RoomRepo
    bookings *repository.BookingRepo
}

// New constructs a Store over the given repositories.
func New(db *sql.DB, rooms *repository.RoomRepo, bookings *repository.BookingRepo) *Store {
    if db == nil || rooms == nil || bookings == nil {
        panic("nil dependency passed to mysql.New")
    }
    return &Store{db: db, rooms: rooms, bookings: bookings}
}

func mapRoomErr(err error) error {
    if errors.Is(err, repository.ErrRoomNotFound) {
        return booking.ErrRoomNotFound
    }
    return err
}

func mapBookingErr(err error) error {
    if errors.Is(err, repository.ErrBookingNotFound) {
        return booking.ErrBookingNotFound
    }
    return err
}

func (s *Store) GetRoom(ctx context.Context, roomID uint64) (*model.Room, error) {
    r, err := s.rooms.GetByID(ctx, roomID)
    if err != nil {
        return nil, mapRoomErr(err)
    }
    return r, nil
}

func (s *Store) GetBooking(ctx context.Context, bookingID uint64) (*model.Booking, error) {
    b, err := s.bookings.GetByID(ctx, bookingID)
    if err != nil {
        return nil, mapBookingErr(err)
    }
    return b, nil
}

func (s *Store) ListBookingsByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
    return s.bookings.ListByUser(ctx, userID)
}

func (s *Store) ListBookingsByRoom(ctx context.Context, roomID uint64) ([]*model.Booking, error) {
    return s.bookings.ListByRoom(ctx, roomID)
}

func (s *Store) CountOverlapping(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    return s.bookings.CountOverlapping(ctx, roomID, checkIn, checkOut)
}

func (s *Store) UpdateBookingStatus(ctx context.Context, bookingID uint64, status model.BookingStatus) error {
    return mapBookingErr(s.bookings.UpdateStatus(ctx, bookingID, status))
}

// Begin opens a database transaction wrapped in the booking.Tx
// interface.
func (s *Store) Begin(ctx context.Context) (booking.Tx, error) {
    dbTx, err := s.db.BeginTx(ctx, nil)
    if err != nil {
        return nil, err
    }
    return &tx{store: s, tx: dbTx}, nil
}

type tx struct {
    store *Store
    tx    *sql.Tx
}

func (t *tx) LockRoom(ctx context.Context, roomID uint64) (*model.Room, error) {
    r, err := t.store.rooms.GetByIDForUpdateTx(ctx, t.tx, roomID)
    if err != nil {
        return nil, mapRoomErr(err)
    }
    return r, nil
}

func (t *tx) CountOverlapping(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    return t.store.bookings.CountOverlappingTx(ctx, t.tx, roomID, checkIn, checkOut)
}

func (t *tx) InsertBooking(ctx context.Context, b *model.Booking) error {
    return t.store.bookings.CreateTx(ctx, t.tx, b)
}

func (t *tx) Commit() error   { return t.tx.Commit() }
func (t *tx) Rollback() error { return t.tx.Rollback() }
