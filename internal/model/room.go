package model

// Room describes a hotel room in the inventory. Rooms are created
// once at seeding time from the tier configuration and are immutable
// afterwards. This struct corresponds to a row in the `rooms` table.
//
// Fields:
//  ID       – primary key identifier.
//  Number   – unique room number (e.g. "101", "305").
//  Price    – price per night.
//  Capacity – number of guests the room sleeps.
//  RoomType – tier of the room (standard, superior, suite).
type Room struct {
	ID       int64   `json:"id"`        // rooms.id
	Number   string  `json:"number"`    // rooms.number
	Price    float64 `json:"price"`     // rooms.price
	Capacity int     `json:"capacity"`  // rooms.capacity
	RoomType string  `json:"room_type"` // rooms.room_type
}

// Room tier names. Each tier has a fixed price and capacity defined
// by configuration at seeding time.
const (
	RoomTypeStandard = "standard"
	RoomTypeSuperior = "superior"
	RoomTypeSuite    = "suite"
)
