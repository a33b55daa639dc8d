package model

import "time"

// Hotel represents a property that offers rooms for booking.  Hotels
// are managed by administrators; guests can browse them publicly.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the hotel.
//  City      – city the hotel is located in.
//  Address   – street address.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Hotel struct {
    ID        uint64    `json:"id"`         // hotels.id
    Name      string    `json:"name"`       // hotels.name
    City      string    `json:"city"`       // hotels.city
    Address   string    `json:"address"`    // hotels.address
    CreatedAt time.Time `json:"created_at"` // hotels.created_at
    UpdatedAt time.Time `json:"updated_at"` // hotels.updated_at
}
