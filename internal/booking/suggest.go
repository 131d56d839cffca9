package booking

import (
	"errors"
	"sort"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Suggestion preconditions.
var (
	// ErrCapacityExceeded: the whole inventory cannot sleep the party.
	ErrCapacityExceeded = errors.New("not enough capacity for the requested guests")
	// ErrInsufficientRooms: fewer free rooms than the caller asked for.
	ErrInsufficientRooms = errors.New("not enough rooms available for the request")
)

// TypeStat summarizes one room type among the available rooms:
// how many are free, the capacity of a representative room of that
// type and the average price across the free rooms of the type.
type TypeStat struct {
	RoomType string  `json:"room_type"`
	Count    int     `json:"count"`
	Capacity int     `json:"capacity"`
	Price    float64 `json:"price"`
}

// Suggestion is the result of the combination heuristic.
type Suggestion struct {
	Selection []model.Room // proposed room combination
	Available []model.Room // all free rooms for the range, fetch order
	PerType   []TypeStat   // stats per room type, first-seen order
	TotalCost float64      // Σ price × nights over the selection
}

// Suggest proposes a room combination for the given party size and
// room count over an immutable snapshot of available rooms.
//
// The heuristic is greedy and deliberately local: each type group is
// scanned cheapest-first for a combination of exactly `requested`
// rooms with capacity >= guests, and the first type that yields one
// wins. There is no cost minimization across types; that is policy,
// not an oversight. When no single-type combination qualifies, the
// first `requested` rooms in fetch order are taken, and if the pick
// still sleeps fewer than `guests` the remaining rooms are appended
// in fetch order until capacity suffices — this top-up may exceed
// `requested` rooms.
func Suggest(available []model.Room, guests, requested, nights int) (*Suggestion, error) {
	totalCapacity := 0
	for _, r := range available {
		totalCapacity += r.Capacity
	}
	if totalCapacity < guests {
		return nil, ErrCapacityExceeded
	}
	if requested > len(available) {
		return nil, ErrInsufficientRooms
	}

	// Group by type, remembering first-seen type order so the scan
	// below is deterministic over the fetch order.
	byType := make(map[string][]model.Room)
	typeOrder := make([]string, 0, 3)
	for _, r := range available {
		if _, seen := byType[r.RoomType]; !seen {
			typeOrder = append(typeOrder, r.RoomType)
		}
		byType[r.RoomType] = append(byType[r.RoomType], r)
	}

	var selection []model.Room
	for _, rt := range typeOrder {
		group := byType[rt]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Price < group[j].Price })
		combo := make([]model.Room, 0, requested)
		capacity := 0
		for _, r := range group {
			if len(combo) < requested && capacity < guests {
				combo = append(combo, r)
				capacity += r.Capacity
			}
			if len(combo) == requested && capacity >= guests {
				break
			}
		}
		if len(combo) == requested && capacity >= guests {
			selection = combo
			break
		}
	}
	if selection == nil {
		// Fallback: the first rooms in fetch order.
		selection = append([]model.Room(nil), available[:requested]...)
	}

	// Top up capacity with rooms not already selected.
	selectedCapacity := 0
	picked := make(map[int64]struct{}, len(selection))
	for _, r := range selection {
		selectedCapacity += r.Capacity
		picked[r.ID] = struct{}{}
	}
	if selectedCapacity < guests {
		needed := guests - selectedCapacity
		for _, r := range available {
			if needed <= 0 {
				break
			}
			if _, ok := picked[r.ID]; ok {
				continue
			}
			selection = append(selection, r)
			picked[r.ID] = struct{}{}
			needed -= r.Capacity
		}
	}

	stats := make([]TypeStat, 0, len(typeOrder))
	for _, rt := range typeOrder {
		group := byType[rt]
		var sum float64
		for _, r := range group {
			sum += r.Price
		}
		stats = append(stats, TypeStat{
			RoomType: rt,
			Count:    len(group),
			Capacity: group[0].Capacity,
			Price:    sum / float64(len(group)),
		})
	}

	return &Suggestion{
		Selection: selection,
		Available: available,
		PerType:   stats,
		TotalCost: TotalPrice(selection, nights),
	}, nil
}
