package repository

import (
    "context"
    "database/sql"
    "errors"
    "time"

    "github.com/roomstack/hotel-booking/internal/model"
)

// BookingRepo provides persistence for bookings.  Check-in and
// check-out are DATE columns holding half-open ranges; the overlap
// predicate used throughout is `check_in < ? AND ? < check_out`.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying sql.DB for callers that need to begin
// transactions spanning multiple repositories.
func (r *BookingRepo) DB() *sql.DB { return r.db }

const bookingCols = `id, reference, user_id, room_id, check_in, check_out, guests, total_price_cents, status, created_at, updated_at`

func scanBookingRow(scan func(dest ...any) error, b *model.Booking) error {
    return scan(&b.ID, &b.Reference, &b.UserID, &b.RoomID, &b.CheckIn, &b.CheckOut,
        &b.Guests, &b.TotalPriceCents, &b.Status, &b.CreatedAt, &b.UpdatedAt)
}

// CreateTx inserts a new booking within the scope of an existing
// transaction and reads the row back to populate the generated ID and
// timestamps.  The caller must commit or roll back the transaction.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking) error {
    const q = `INSERT INTO bookings (reference, user_id, room_id, check_in, check_out, guests, total_price_cents, status)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := tx.ExecContext(ctx, q,
        b.Reference, b.UserID, b.RoomID, b.CheckIn, b.CheckOut, b.Guests, b.TotalPriceCents, string(b.Status))
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    row := tx.QueryRowContext(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id = ?`, b.ID)
    return scanBookingRow(row.Scan, b)
}

// GetByID returns a booking by its ID or ErrBookingNotFound.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    var b model.Booking
    row := r.db.QueryRowContext(ctx, `SELECT `+bookingCols+` FROM bookings WHERE id = ?`, id)
    if err := scanBookingRow(row.Scan, &b); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return &b, nil
}

// ListByUser returns all bookings created by a user, newest first.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]*model.Booking, error) {
    return r.list(ctx, `SELECT `+bookingCols+` FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID)
}

// ListByRoom returns all bookings for a room, newest first.
func (r *BookingRepo) ListByRoom(ctx context.Context, roomID uint64) ([]*model.Booking, error) {
    return r.list(ctx, `SELECT `+bookingCols+` FROM bookings WHERE room_id = ? ORDER BY created_at DESC, id DESC`, roomID)
}

func (r *BookingRepo) list(ctx context.Context, q string, arg any) ([]*model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, q, arg)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Booking, 0)
    for rows.Next() {
        b := new(model.Booking)
        if err := scanBookingRow(rows.Scan, b); err != nil {
            return nil, err
        }
        out = append(out, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

const overlapQuery = `SELECT COUNT(*) FROM bookings
                      WHERE room_id = ?
                        AND status IN ('PENDING','CONFIRMED')
                        AND check_in < ? AND ? < check_out`

// CountOverlapping counts bookings in PENDING or CONFIRMED state whose
// stored range overlaps the half-open range [checkIn, checkOut).
func (r *BookingRepo) CountOverlapping(ctx context.Context, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    var n uint32
    err := r.db.QueryRowContext(ctx, overlapQuery, roomID, checkOut, checkIn).Scan(&n)
    return n, err
}

// CountOverlappingTx is CountOverlapping inside an existing
// transaction, used by the booking writer after locking the room row.
func (r *BookingRepo) CountOverlappingTx(ctx context.Context, tx *sql.Tx, roomID uint64, checkIn, checkOut time.Time) (uint32, error) {
    var n uint32
    err := tx.QueryRowContext(ctx, overlapQuery, roomID, checkOut, checkIn).Scan(&n)
    return n, err
}

// UpdateStatus sets a booking's status.  Transition validity is
// enforced by the booking service; this method only persists the
// value.  Returns ErrBookingNotFound when the booking does not exist.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status model.BookingStatus) error {
    res, err := r.db.ExecContext(ctx,
        `UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
        string(status), id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrBookingNotFound
    }
    return nil
}
