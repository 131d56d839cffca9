package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseStay(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		in, out, err := ParseStay("20260801", "20260805")
		require.NoError(t, err)
		assert.Equal(t, day("2026-08-01"), in)
		assert.Equal(t, day("2026-08-05"), out)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		cases := [][2]string{
			{"2026-08-01", "20260805"},
			{"20260801", "2026-08-05"},
			{"notadate", "20260805"},
			{"", "20260805"},
			{"20261301", "20261305"},
		}
		for _, c := range cases {
			_, _, err := ParseStay(c[0], c[1])
			assert.ErrorIs(t, err, ErrInvalidDateFormat, "check_in=%q check_out=%q", c[0], c[1])
		}
	})

	t.Run("rejects inverted or zero-night range", func(t *testing.T) {
		_, _, err := ParseStay("20260805", "20260801")
		assert.ErrorIs(t, err, ErrInvalidDateRange)

		_, _, err = ParseStay("20260801", "20260801")
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})
}

func TestNights(t *testing.T) {
	assert.Equal(t, 1, Nights(day("2026-08-01"), day("2026-08-02")))
	assert.Equal(t, 4, Nights(day("2026-08-01"), day("2026-08-05")))
	assert.Equal(t, 31, Nights(day("2026-08-01"), day("2026-09-01")))
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{"identical ranges", "2026-08-01", "2026-08-05", "2026-08-01", "2026-08-05", true},
		{"partial overlap", "2026-08-01", "2026-08-05", "2026-08-03", "2026-08-10", true},
		{"contained range", "2026-08-01", "2026-08-10", "2026-08-03", "2026-08-05", true},
		{"back to back stays do not overlap", "2026-08-01", "2026-08-05", "2026-08-05", "2026-08-08", false},
		{"disjoint ranges", "2026-08-01", "2026-08-03", "2026-08-10", "2026-08-12", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			assert.Equal(t, tt.want, got)
			// Overlap is symmetric.
			assert.Equal(t, tt.want, Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd)))
		})
	}
}

func TestAvailable(t *testing.T) {
	all := []model.Room{
		{ID: 1, Number: "101", RoomType: model.RoomTypeStandard},
		{ID: 2, Number: "102", RoomType: model.RoomTypeStandard},
		{ID: 3, Number: "203", RoomType: model.RoomTypeSuperior},
		{ID: 4, Number: "304", RoomType: model.RoomTypeSuite},
	}

	t.Run("filters booked rooms", func(t *testing.T) {
		booked := map[int64]struct{}{2: {}, 4: {}}
		free := Available(all, booked)
		require.Len(t, free, 2)
		assert.Equal(t, int64(1), free[0].ID)
		assert.Equal(t, int64(3), free[1].ID)
	})

	t.Run("preserves input order", func(t *testing.T) {
		free := Available(all, nil)
		require.Len(t, free, 4)
		for i, r := range free {
			assert.Equal(t, all[i].ID, r.ID)
		}
	})

	t.Run("all rooms booked", func(t *testing.T) {
		booked := map[int64]struct{}{1: {}, 2: {}, 3: {}, 4: {}}
		assert.Empty(t, Available(all, booked))
	})
}
