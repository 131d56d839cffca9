package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestAllocateByType(t *testing.T) {
	available := []model.Room{
		{ID: 1, Number: "101", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "203", Price: 180, Capacity: 3, RoomType: model.RoomTypeSuperior},
		{ID: 4, Number: "304", Price: 300, Capacity: 4, RoomType: model.RoomTypeSuite},
	}

	t.Run("one room per requested type in request order", func(t *testing.T) {
		rooms, err := AllocateByType(available, []string{model.RoomTypeSuperior, model.RoomTypeStandard})
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, int64(3), rooms[0].ID)
		assert.Equal(t, int64(1), rooms[1].ID)
	})

	t.Run("repeated type consumes distinct rooms", func(t *testing.T) {
		rooms, err := AllocateByType(available, []string{model.RoomTypeStandard, model.RoomTypeStandard})
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, int64(1), rooms[0].ID)
		assert.Equal(t, int64(2), rooms[1].ID)
	})

	t.Run("fails when a type runs out", func(t *testing.T) {
		_, err := AllocateByType(available, []string{model.RoomTypeSuite, model.RoomTypeSuite})
		var unavailable *RoomTypeUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, model.RoomTypeSuite, unavailable.RoomType)
	})

	t.Run("all or nothing on unknown type", func(t *testing.T) {
		rooms, err := AllocateByType(available, []string{model.RoomTypeStandard, "penthouse"})
		var unavailable *RoomTypeUnavailableError
		require.ErrorAs(t, err, &unavailable)
		assert.Equal(t, "penthouse", unavailable.RoomType)
		assert.Nil(t, rooms)
	})

	t.Run("no rooms at all", func(t *testing.T) {
		_, err := AllocateByType(nil, []string{model.RoomTypeStandard})
		var unavailable *RoomTypeUnavailableError
		require.ErrorAs(t, err, &unavailable)
	})
}

func TestTotalPrice(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Price: 100},
		{ID: 2, Price: 180},
	}
	assert.Equal(t, 280.0, TotalPrice(rooms, 1))
	assert.Equal(t, 840.0, TotalPrice(rooms, 3))
	assert.Equal(t, 0.0, TotalPrice(nil, 5))
}
