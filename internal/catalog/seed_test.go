package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/config"
	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestPlanNumbering(t *testing.T) {
	cfg := config.Config{
		Standard: config.RoomTier{Price: 100, Capacity: 2, Quantity: 3},
		Superior: config.RoomTier{Price: 180, Capacity: 3, Quantity: 2},
		Suite:    config.RoomTier{Price: 300, Capacity: 4, Quantity: 1},
	}

	rooms := Plan(cfg)
	require.Len(t, rooms, 6)

	// The index keeps counting across tiers, so superior numbering
	// starts where standard left off.
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	assert.Equal(t, []string{"101", "102", "103", "204", "205", "306"}, numbers)
}

func TestPlanTierAttributes(t *testing.T) {
	cfg := config.Config{
		Standard: config.RoomTier{Price: 90, Capacity: 2, Quantity: 1},
		Superior: config.RoomTier{Price: 150, Capacity: 3, Quantity: 1},
		Suite:    config.RoomTier{Price: 400, Capacity: 5, Quantity: 1},
	}

	rooms := Plan(cfg)
	require.Len(t, rooms, 3)

	assert.Equal(t, model.RoomTypeStandard, rooms[0].RoomType)
	assert.Equal(t, 90.0, rooms[0].Price)
	assert.Equal(t, 2, rooms[0].Capacity)

	assert.Equal(t, model.RoomTypeSuperior, rooms[1].RoomType)
	assert.Equal(t, 150.0, rooms[1].Price)
	assert.Equal(t, 3, rooms[1].Capacity)

	assert.Equal(t, model.RoomTypeSuite, rooms[2].RoomType)
	assert.Equal(t, 400.0, rooms[2].Price)
	assert.Equal(t, 5, rooms[2].Capacity)
}

func TestPlanEmptyTiers(t *testing.T) {
	rooms := Plan(config.Config{})
	assert.Empty(t, rooms)
}
