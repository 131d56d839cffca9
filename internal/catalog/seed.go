// Package catalog builds the room inventory implied by the tier
// configuration. The plan is a pure function of the config so the
// numbering scheme can be tested without a database; the repository
// layer persists it once at startup.
package catalog

import (
	"strconv"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// Plan returns the full room inventory for the configured tiers.
// Room numbers follow the original numbering: standard rooms are
// 100+i for i starting at 1, superior rooms 200+i and suite rooms
// 300+i with i continuing across tiers, so three standard and two
// superior rooms yield 101, 102, 103, 204, 205.
func Plan(cfg config.Config) []model.Room {
	rooms := make([]model.Room, 0, cfg.Standard.Quantity+cfg.Superior.Quantity+cfg.Suite.Quantity)
	i := 1
	for n := 0; n < cfg.Standard.Quantity; n, i = n+1, i+1 {
		rooms = append(rooms, model.Room{
			Number:   strconv.Itoa(100 + i),
			Price:    cfg.Standard.Price,
			Capacity: cfg.Standard.Capacity,
			RoomType: model.RoomTypeStandard,
		})
	}
	for n := 0; n < cfg.Superior.Quantity; n, i = n+1, i+1 {
		rooms = append(rooms, model.Room{
			Number:   strconv.Itoa(200 + i),
			Price:    cfg.Superior.Price,
			Capacity: cfg.Superior.Capacity,
			RoomType: model.RoomTypeSuperior,
		})
	}
	for n := 0; n < cfg.Suite.Quantity; n, i = n+1, i+1 {
		rooms = append(rooms, model.Room{
			Number:   strconv.Itoa(300 + i),
			Price:    cfg.Suite.Price,
			Capacity: cfg.Suite.Capacity,
			RoomType: model.RoomTypeSuite,
		})
	}
	return rooms
}
