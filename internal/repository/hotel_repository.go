package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/roomstack/hotel-booking/internal/model"
)

// HotelRepo provides CRUD operations over the hotels table.
type HotelRepo struct {
    db *sql.DB
}

// NewHotelRepo constructs a HotelRepo with the given DB handle.
func NewHotelRepo(db *sql.DB) *HotelRepo {
    return &HotelRepo{db: db}
}

const hotelCols = `id, name, city, address, created_at, updated_at`

func scanHotel(row *sql.Row, h *model.Hotel) error {
    return row.Scan(&h.ID, &h.Name, &h.City, &h.Address, &h.CreatedAt, &h.UpdatedAt)
}

// Create inserts a new hotel and reads the row back so timestamps are
// populated on the given struct.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
    const q = `INSERT INTO hotels (name, city, address) VALUES (?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, h.Name, h.City, h.Address)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    h.ID = uint64(id)
    return scanHotel(r.db.QueryRowContext(ctx, `SELECT `+hotelCols+` FROM hotels WHERE id = ?`, h.ID), h)
}

// GetByID retrieves a hotel by its ID.  Returns ErrHotelNotFound when
// no row exists.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (*model.Hotel, error) {
    var h model.Hotel
    err := scanHotel(r.db.QueryRowContext(ctx, `SELECT `+hotelCols+` FROM hotels WHERE id = ?`, id), &h)
    if err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrHotelNotFound
        }
        return nil, err
    }
    return &h, nil
}

// List returns all hotels ordered by ID.
func (r *HotelRepo) List(ctx context.Context) ([]*model.Hotel, error) {
    rows, err := r.db.QueryContext(ctx, `SELECT `+hotelCols+` FROM hotels ORDER BY id`)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := make([]*model.Hotel, 0)
    for rows.Next() {
        h := new(model.Hotel)
        if err := rows.Scan(&h.ID, &h.Name, &h.City, &h.Address, &h.CreatedAt, &h.UpdatedAt); err != nil {
            return nil, err
        }
        out = append(out, h)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return out, nil
}

// Update rewrites the mutable hotel fields.  Returns ErrHotelNotFound
// when the hotel does not exist.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel) error {
    const q = `UPDATE hotels
               SET name = ?, city = ?, address = ?, updated_at = CURRENT_TIMESTAMP
               WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, h.Name, h.City, h.Address, h.ID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrHotelNotFound
    }
    return scanHotel(r.db.QueryRowContext(ctx, `SELECT `+hotelCols+` FROM hotels WHERE id = ?`, h.ID), h)
}

// Delete removes a hotel.  A hotel that still has rooms cannot be
// deleted and yields ErrConflict.
func (r *HotelRepo) Delete(ctx context.Context, id uint64) error {
    var roomCount int
    if err := r.db.QueryRowContext(ctx,
        `SELECT COUNT(*) FROM rooms WHERE hotel_id = ?`, id).Scan(&roomCount); err != nil {
        return err
    }
    if roomCount > 0 {
        return ErrConflict
    }
    res, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = ?`, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n == 0 {
        return ErrHotelNotFound
    }
    return nil
}
