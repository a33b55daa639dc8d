package model

import "time"

// RoomType enumerates the room categories a hotel can offer.
type RoomType string

const (
    RoomSingle       RoomType = "SINGLE"
    RoomDouble       RoomType = "DOUBLE"
    RoomSuite        RoomType = "SUITE"
    RoomDeluxe       RoomType = "DELUXE"
    RoomPresidential RoomType = "PRESIDENTIAL"
)

// Valid reports whether the room type is one of the known categories.
func (t RoomType) Valid() bool {
    switch t {
    case RoomSingle, RoomDouble, RoomSuite, RoomDeluxe, RoomPresidential:
        return true
    }
    return false
}

// Room represents one room type row within a hotel.  Inventory is
// modeled as an undifferentiated pool of TotalRooms interchangeable
// units; individual physical rooms are not tracked.  AvailableRooms is
// a denormalized hint shown in listings and maintained by admin
// updates — the availability checker never reads it, availability is
// always recomputed from live overlapping bookings.
//
// Fields:
//  ID             – primary key identifier.
//  HotelID        – owning hotel.
//  RoomType       – category of the room (SINGLE..PRESIDENTIAL).
//  PriceCents     – nightly price in cents.
//  TotalRooms     – total unit count in the pool (>= 1).
//  AvailableRooms – advertised free count (0..TotalRooms).
//  CreatedAt      – creation timestamp.
//  UpdatedAt      – last update timestamp.
type Room struct {
    ID             uint64    `json:"id"`              // rooms.id
    HotelID        uint64    `json:"hotel_id"`        // rooms.hotel_id
    RoomType       RoomType  `json:"room_type"`       // rooms.room_type
    PriceCents     uint32    `json:"price_cents"`     // rooms.price_cents
    TotalRooms     uint32    `json:"total_rooms"`     // rooms.total_rooms
    AvailableRooms uint32    `json:"available_rooms"` // rooms.available_rooms
    CreatedAt      time.Time `json:"created_at"`      // rooms.created_at
    UpdatedAt      time.Time `json:"updated_at"`      // rooms.updated_at
}
