package booking

import (
	"fmt"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomTypeUnavailableError reports that no free room of a requested
// type remained during allocation. The whole allocation aborts; a
// partial assignment is never returned.
type RoomTypeUnavailableError struct {
	RoomType string
}

func (e *RoomTypeUnavailableError) Error() string {
	return fmt.Sprintf("no rooms of type %s available for the requested period", e.RoomType)
}

// AllocateByType assigns one available room per requested type, in
// request order. Rooms of the same type are consumed in the order
// they appear in the available slice. When a requested type has no
// room left the allocation fails with RoomTypeUnavailableError and
// nothing is returned.
func AllocateByType(available []model.Room, roomTypes []string) ([]model.Room, error) {
	byType := make(map[string][]model.Room)
	for _, r := range available {
		byType[r.RoomType] = append(byType[r.RoomType], r)
	}
	selected := make([]model.Room, 0, len(roomTypes))
	for _, rt := range roomTypes {
		pool := byType[rt]
		if len(pool) == 0 {
			return nil, &RoomTypeUnavailableError{RoomType: rt}
		}
		selected = append(selected, pool[0])
		byType[rt] = pool[1:]
	}
	return selected, nil
}

// TotalPrice returns the price of a stay over the given rooms:
// the sum of each room's nightly price times the number of nights.
func TotalPrice(rooms []model.Room, nights int) float64 {
	var total float64
	for _, r := range rooms {
		total += r.Price * float64(nights)
	}
	return total
}
