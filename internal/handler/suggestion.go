package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/booking"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
)

// SuggestionHandler serves the public availability search. It works
// on a read-only snapshot: the response is advisory and a later
// booking may invalidate it, which is why /book re-checks
// availability under the allocation lock.
type SuggestionHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
}

func NewSuggestionHandler(rooms *repository.RoomRepo, bookings *repository.BookingRepo) *SuggestionHandler {
	if rooms == nil || bookings == nil {
		panic("nil repository passed to NewSuggestionHandler")
	}
	return &SuggestionHandler{Rooms: rooms, Bookings: bookings}
}

type suggestionReq struct {
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
	Guests   int    `json:"guests" validate:"required,gt=0"`
	Rooms    int    `json:"rooms" validate:"required,gt=0"`
}

// RoomsPerTypeAndSuggestion handles POST /rooms_per_type_and_suggestion.
// It returns the free rooms for the range, per-type statistics, a
// proposed combination for the party and the combination's total cost.
func (h *SuggestionHandler) RoomsPerTypeAndSuggestion(c echo.Context) error {
	var req suggestionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Dati mancanti"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Dati mancanti"})
	}
	checkIn, checkOut, err := booking.ParseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": dateError(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	all, err := h.Rooms.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	booked, err := h.Bookings.ActiveOverlappingRoomIDs(ctx, checkIn, checkOut)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	free := booking.Available(all, booked)

	s, err := booking.Suggest(free, req.Guests, req.Rooms, booking.Nights(checkIn, checkOut))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrCapacityExceeded):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Non ci sono abbastanza camere disponibili per ospitare il numero di ospiti richiesto.",
			})
		case errors.Is(err, booking.ErrInsufficientRooms):
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Non ci sono abbastanza camere disponibili per soddisfare la richiesta.",
			})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"selected_combination":            s.Selection,
		"available_rooms":                 s.Available,
		"room_type_counts":                s.PerType,
		"total_cost_selected_combination": s.TotalCost,
	})
}
