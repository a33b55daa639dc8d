package booking

import (
    "context"
    "fmt"
    "time"

    "github.com/google/uuid"

    "github.com/roomstack/hotel-booking/internal/model"
)

// Store is the persistence port consumed by the Service.  It is
// satisfied by the MySQL-backed store in production and by an
// in-memory store in tests.  Implementations must return the sentinel
// errors of this package (ErrRoomNotFound, ErrBookingNotFound) for
// missing rows.
type Store interface {
    GetRoom(ctx context.Context, roomID uint64) (*model.Room, error)
    GetBooking(ctx context.Context, bookingID uint64) (*model.Booking, error)
    ListBookingsByUser(ctx context.Context, userID uint64) ([]*model.Booking, error)
    ListBookingsByRoom(ctx context.Context, roomID uint64) ([]*model.Booking, error)
    // CountOverlapping counts bookings for the room in states PENDING or
    // CONFIRMED whose half-open range overlaps [checkIn, checkOut).
    CountOverlapping(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error)
    UpdateBookingStatus(ctx context.Context, bookingID uint64, status model.BookingStatus) error
    // Begin opens a transaction in which a check-then-insert sequence can
    // run atomically.  The caller must Commit or Rollback.
    Begin(ctx context.Context) (Tx, error)
}

// Tx is a single store transaction.  LockRoom must take a write lock
// on the room row so that concurrent booking attempts for the same
// room serialize on it.
type Tx interface {
    LockRoom(ctx context.Context, roomID uint64) (*model.Room, error)
    CountOverlapping(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error)
    InsertBooking(ctx context.Context, b *model.Booking) error
    Commit() error
    Rollback() error
}

// Availability is the result of checking a room for a date range.
// AvailableRooms is derived from the live set of overlapping bookings,
// never from the room's advertised available_rooms hint.
type Availability struct {
    RoomID         uint64    `json:"room_id"`
    CheckIn        time.Time `json:"checkin"`
    CheckOut       time.Time `json:"checkout"`
    TotalRooms     uint32    `json:"total_rooms"`
    BookedRooms    uint32    `json:"booked_rooms"`
    AvailableRooms uint32    `json:"available_rooms"`
    IsAvailable    bool      `json:"is_available"`
}

const (
    minGuests = 1
    maxGuests = 10
)

// Service implements availability checking, booking creation,
// cancellation and administrative status transitions on top of a Store.
type Service struct {
    store Store
}

// New constructs a Service bound to the given store.
func New(store Store) *Service {
    if store == nil {
        panic("nil store passed to booking.New")
    }
    return &Service{store: store}
}

// validateRange enforces that both dates are set and that checkout is
// strictly after checkin.  Ranges are half-open: [checkIn, checkOut).
func validateRange(checkIn, checkOut time.Time) error {
    if checkIn.IsZero() || checkOut.IsZero() {
        return ErrInvalidRange
    }
    if !checkOut.After(checkIn) {
        return ErrInvalidRange
    }
    return nil
}

// CheckAvailability determines whether enough units of the room's
// inventory pool are free over [checkIn, checkOut).  Two half-open
// ranges [a,b) and [c,d) overlap iff a < d && c < b; the stored
// bookings counted are those in states PENDING or CONFIRMED.  The
// check is read-only and advisory: CreateBooking repeats it under a
// row lock before writing.
func (s *Service) CheckAvailability(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (*Availability, error) {
    if err := validateRange(checkIn, checkOut); err != nil {
        return nil, err
    }
    room, err := s.store.GetRoom(ctx, roomID)
    if err != nil {
        return nil, err
    }
    booked, err := s.store.CountOverlapping(ctx, roomID, checkIn, checkOut)
    if err != nil {
        return nil, fmt.Errorf("count overlapping bookings: %w", err)
    }
    avail := uint32(0)
    if booked < room.TotalRooms {
        avail = room.TotalRooms - booked
    }
    return &Availability{
        RoomID:         roomID,
        CheckIn:        checkIn,
        CheckOut:       checkOut,
        TotalRooms:     room.TotalRooms,
        BookedRooms:    booked,
        AvailableRooms: avail,
        IsAvailable:    avail > 0,
    }, nil
}

// CreateBooking validates the request, re-checks availability under a
// room row lock and persists a new PENDING booking.  The count and the
// insert run in one transaction so that two concurrent requests for
// the last free unit serialize instead of both committing.
func (s *Service) CreateBooking(ctx context.Context, userID, roomID uint64, checkIn, checkOut time.Time, guests int) (*model.Booking, error) {
    if err := validateRange(checkIn, checkOut); err != nil {
        return nil, err
    }
    if guests < minGuests || guests > maxGuests {
        return nil, ErrInvalidRange
    }

    tx, err := s.store.Begin(ctx)
    if err != nil {
        return nil, fmt.Errorf("begin transaction: %w", err)
    }
    committed := false
    defer func() {
        if !committed {
            _ = tx.Rollback()
        }
    }()

    room, err := tx.LockRoom(ctx, roomID)
    if err != nil {
        return nil, err
    }
    booked, err := tx.CountOverlapping(ctx, roomID, checkIn, checkOut)
    if err != nil {
        return nil, fmt.Errorf("count overlapping bookings: %w", err)
    }
    if booked >= room.TotalRooms {
        return nil, ErrRoomUnavailable
    }

    nights := int(checkOut.Sub(checkIn).Hours() / 24)
    b := &model.Booking{
        Reference:       uuid.NewString(),
        UserID:          userID,
        RoomID:          roomID,
        CheckIn:         checkIn,
        CheckOut:        checkOut,
        Guests:          uint8(guests),
        TotalPriceCents: uint64(room.PriceCents) * uint64(nights),
        Status:          model.StatusPending,
    }
    if err := tx.InsertBooking(ctx, b); err != nil {
        return nil, fmt.Errorf("insert booking: %w", err)
    }
    if err := tx.Commit(); err != nil {
        return nil, fmt.Errorf("commit booking: %w", err)
    }
    committed = true
    return b, nil
}

// CancelBooking transitions a booking to CANCELLED on behalf of its
// owner or an administrator.  A CANCELLED booking yields
// ErrAlreadyCancelled; a COMPLETED one yields ErrCannotCancel.  The
// transition is terminal.
func (s *Service) CancelBooking(ctx context.Context, actorID uint64, role model.Role, bookingID uint64) (*model.Booking, error) {
    b, err := s.store.GetBooking(ctx, bookingID)
    if err != nil {
        return nil, err
    }
    if b.UserID != actorID && role != model.RoleAdmin {
        return nil, ErrForbidden
    }
    switch b.Status {
    case model.StatusCancelled:
        return nil, ErrAlreadyCancelled
    case model.StatusCompleted:
        return nil, ErrCannotCancel
    }
    if err := s.store.UpdateBookingStatus(ctx, bookingID, model.StatusCancelled); err != nil {
        return nil, fmt.Errorf("update booking status: %w", err)
    }
    b.Status = model.StatusCancelled
    return b, nil
}

// UpdateStatus applies an administrative status transition.  The
// target status must be a known value and the move must be permitted
// by the status machine (PENDING → CONFIRMED/CANCELLED, CONFIRMED →
// CANCELLED/COMPLETED; CANCELLED and COMPLETED are terminal).
func (s *Service) UpdateStatus(ctx context.Context, bookingID uint64, next model.BookingStatus) (*model.Booking, error) {
    if !next.Valid() {
        return nil, ErrInvalidTransition
    }
    b, err := s.store.GetBooking(ctx, bookingID)
    if err != nil {
        return nil, err
    }
    if !b.Status.CanTransitionTo(next) {
        return nil, ErrInvalidTransition
    }
    if err := s.store.UpdateBookingStatus(ctx, bookingID, next); err != nil {
        return nil, fmt.Errorf("update booking status: %w", err)
    }
    b.Status = next
    return b, nil
}

// GetBookingFor returns a booking if the actor owns it or is an
// administrator.
func (s *Service) GetBookingFor(ctx context.Context, actorID uint64, role model.Role, bookingID uint64) (*model.Booking, error) {
    b, err := s.store.GetBooking(ctx, bookingID)
    if err != nil {
        return nil, err
    }
    if b.UserID != actorID && role != model.RoleAdmin {
        return nil, ErrForbidden
    }
    return b, nil
}

// ListForUser returns all bookings created by the given user, newest
// first.
func (s *Service) ListForUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
    return s.store.ListBookingsByUser(ctx, userID)
}

// ListForRoom returns all bookings for a room.  It verifies the room
// exists so a missing room yields ErrRoomNotFound rather than an empty
// list.
func (s *Service) ListForRoom(ctx context.Context, roomID uint64) ([]*model.Booking, error) {
    if _, err := s.store.GetRoom(ctx, roomID); err != nil {
        return nil, err
    }
    return s.store.ListBookingsByRoom(ctx, roomID)
}
