package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func TestSuggestPreconditions(t *testing.T) {
	available := []model.Room{
		{ID: 1, Number: "101", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
	}

	t.Run("party larger than total capacity", func(t *testing.T) {
		_, err := Suggest(available, 10, 2, 1)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})

	t.Run("more rooms requested than available", func(t *testing.T) {
		_, err := Suggest(available, 2, 3, 1)
		assert.ErrorIs(t, err, ErrInsufficientRooms)
	})

	t.Run("empty inventory", func(t *testing.T) {
		_, err := Suggest(nil, 1, 1, 1)
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	})
}

func TestSuggestSingleTypeCombination(t *testing.T) {
	available := []model.Room{
		{ID: 1, Number: "101", Price: 120, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "203", Price: 180, Capacity: 3, RoomType: model.RoomTypeSuperior},
	}

	s, err := Suggest(available, 4, 2, 3)
	require.NoError(t, err)

	// Standard is the first type seen and two cheapest-first standard
	// rooms sleep the party, so the superior room is never considered.
	require.Len(t, s.Selection, 2)
	assert.Equal(t, int64(2), s.Selection[0].ID)
	assert.Equal(t, int64(1), s.Selection[1].ID)
	assert.Equal(t, (100.0+120.0)*3, s.TotalCost)
	assert.Equal(t, available, s.Available)
}

func TestSuggestCapacityTopUp(t *testing.T) {
	// Three identical standard rooms sleeping two guests each. A
	// party of five asking for two rooms cannot fit in any two of
	// them, so the fallback picks the first two and the top-up
	// appends the third.
	available := []model.Room{
		{ID: 1, Number: "101", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "103", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
	}

	s, err := Suggest(available, 5, 2, 2)
	require.NoError(t, err)

	require.Len(t, s.Selection, 3)
	assert.Equal(t, int64(1), s.Selection[0].ID)
	assert.Equal(t, int64(2), s.Selection[1].ID)
	assert.Equal(t, int64(3), s.Selection[2].ID)

	capacity := 0
	for _, r := range s.Selection {
		capacity += r.Capacity
	}
	assert.GreaterOrEqual(t, capacity, 5)
	assert.Equal(t, 100.0*3*2, s.TotalCost)
}

func TestSuggestFirstQualifyingTypeWins(t *testing.T) {
	// The suite sleeps everyone in one room and is seen after the
	// standard rooms, but no pair of standard rooms qualifies for a
	// one-room request, so the scan moves on to the suite group.
	available := []model.Room{
		{ID: 1, Number: "101", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "303", Price: 300, Capacity: 4, RoomType: model.RoomTypeSuite},
	}

	s, err := Suggest(available, 4, 1, 1)
	require.NoError(t, err)
	require.Len(t, s.Selection, 1)
	assert.Equal(t, int64(3), s.Selection[0].ID)
	assert.Equal(t, 300.0, s.TotalCost)
}

func TestSuggestPerTypeStats(t *testing.T) {
	available := []model.Room{
		{ID: 1, Number: "101", Price: 120, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", Price: 100, Capacity: 2, RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "203", Price: 180, Capacity: 3, RoomType: model.RoomTypeSuperior},
	}

	s, err := Suggest(available, 2, 1, 1)
	require.NoError(t, err)

	require.Len(t, s.PerType, 2)
	assert.Equal(t, model.RoomTypeStandard, s.PerType[0].RoomType)
	assert.Equal(t, 2, s.PerType[0].Count)
	assert.Equal(t, 2, s.PerType[0].Capacity)
	assert.Equal(t, 110.0, s.PerType[0].Price) // average of 100 and 120

	assert.Equal(t, model.RoomTypeSuperior, s.PerType[1].RoomType)
	assert.Equal(t, 1, s.PerType[1].Count)
	assert.Equal(t, 3, s.PerType[1].Capacity)
	assert.Equal(t, 180.0, s.PerType[1].Price)
}
