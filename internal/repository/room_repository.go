package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/roomstack/hotel-booking/internal/model"
)

// RoomRepo provides CRUD operations over the rooms table.  A room row
// describes a pool of interchangeable units of one type within one
// hotel, not an individual physical room.
type RoomRepo struct {
    db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
    return &RoomRepo{db: db}
}

// DB exposes the underlying sql.DB.  It allows callers to begin
// transactions spanning multiple repositories.
func (r *RoomRepo) DB() *sql.DB {
    return r.db
}

const roomCols = `id, hotel_id, room_type, price_cents, total_rooms, available_rooms, created_at, updated_at`

func scanRoomRow(scan func(dest ...any) error, rm *model.Room) error {
    return scan(&rm.ID, &rm.HotelID, &rm.RoomType, &rm.PriceCents,
        &rm.TotalRooms, &rm.AvailableRooms, &rm.CreatedAt, &rm.UpdatedAt)
}

// Create inserts a new room under a hotel and reads the row back so
// timestamps are populated.  The caller must have validated the room
// type, price and counts.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
    const q = `INSERT INTO rooms (hotel_id, room_type, price_cents, total_rooms, available_rooms)
               VALUES (?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, rm.HotelID, string(rm.RoomType), rm.PriceCents, rm.TotalRooms, rm.AvailableRooms)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    rm.ID = uint64(id)
    row := r.db.QueryRowContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = ?`, rm.ID)
    return scanRoomRow(row.Scan, rm)
}

// GetByID retrieves a room by its ID.  Returns ErrRoomNotFound when no
// row exists.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
    var rm model.Room
    row := r.db.QueryRowContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = ?`, id)
    if err := scanRoomRow(row.Scan, &rm); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    return &rm, nil
}

// GetByIDForUpdateTx reads a room inside the given transaction with a
// write lock (SELECT ... FOR UPDATE).  Concurrent booking attempts for
// the same room block on this lock until the transaction ends, which
// is what makes the availability check-then-insert sequence safe.
func (r *RoomRepo) GetByIDForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Room, error) {
    var rm model.Room
    row := tx.QueryRowContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = ? FOR UPDATE`, id)
    if err := scanRoomRow(row.Scan, &rm); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrRoomNotFound
        }
        return nil, err
    }
    return &rm, nil
}

// ListByHotel returns all rooms belonging to a hotel ordered by ID.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]*model.Room, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE hotel_id = ? ORDER BY id`, hotelID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Room, 0)
    for rows.Next() {
        rm := new(model.Room)
        if err := scanRoomRow(rows.Scan, rm); err != nil {
            return nil, err
        }
        out = append(out, rm)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Update rewrites the mutable room fields.  Returns ErrRoomNotFound
// when the room does not exist.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
    const q = `UPDATE rooms
               SET room_type = ?, price_cents = ?, total_rooms = ?, available_rooms = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, string(rm.RoomType), rm.PriceCents, rm.TotalRooms, rm.AvailableRooms, rm.ID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrRoomNotFound
    }
    row := r.db.QueryRowContext(ctx, `SELECT `+roomCols+` FROM rooms WHERE id = ?`, rm.ID)
    return scanRoomRow(row.Scan, rm)
}

// Delete removes a room.  Rooms with bookings in PENDING or CONFIRMED
// state cannot be deleted and yield ErrConflict.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
    var live int
    if err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM bookings WHERE room_id = ? AND status IN ('PENDING','CONFIRMED')`,
        id).Scan(&live); err != nil {
        return err
    }
    if live > 0 {
        return ErrConflict
    }
    res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrRoomNotFound
    }
    return nil
}
