package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/booking"
	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/queue"
	"github.com/iliyamo/hotel-room-booking/internal/repository"
	queue_publisher "github.com/iliyamo/hotel-room-booking/internal/service"
)

// BookingHandler groups the repositories needed to create, cancel,
// modify and list bookings. All methods assume JWT authentication
// has already run. Every write sequence runs inside a transaction
// under the allocation advisory lock, so an availability check and
// the insert it guards are never interleaved with another request's.
type BookingHandler struct {
	Rooms    *repository.RoomRepo
	Bookings *repository.BookingRepo
}

func NewBookingHandler(rooms *repository.RoomRepo, bookings *repository.BookingRepo) *BookingHandler {
	if rooms == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Rooms: rooms, Bookings: bookings}
}

// ----- DTOs -----

type bookReq struct {
	CheckIn   string   `json:"check_in" validate:"required"`
	CheckOut  string   `json:"check_out" validate:"required"`
	Guests    int      `json:"guests" validate:"required,gt=0"`
	RoomTypes []string `json:"room_types" validate:"required,min=1,dive,required"`
}

type cancelReq struct {
	BookingID int64 `json:"booking_id"`
}

type modifyReq struct {
	BookingID    int64    `json:"booking_id" validate:"required"`
	NewCheckIn   string   `json:"new_check_in" validate:"required"`
	NewCheckOut  string   `json:"new_check_out" validate:"required"`
	NewGuests    int      `json:"new_guests" validate:"required,gt=0"`
	NewRoomTypes []string `json:"new_room_types" validate:"required,min=1,dive,required"`
}

// bookedRoom is the room summary embedded in booking responses.
type bookedRoom struct {
	RoomID     int64   `json:"room_id"`
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Price      float64 `json:"price"`
}

func bookedRooms(rooms []model.Room) []bookedRoom {
	out := make([]bookedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, bookedRoom{RoomID: r.ID, RoomNumber: r.Number, RoomType: r.RoomType, Price: r.Price})
	}
	return out
}

func roomNumbers(rooms []model.Room) []string {
	nums := make([]string, 0, len(rooms))
	for _, r := range rooms {
		nums = append(nums, r.Number)
	}
	return nums
}

// dateError maps a stay-parsing failure to its client message.
func dateError(err error) string {
	if errors.Is(err, booking.ErrInvalidDateRange) {
		return "La data di check-out deve essere successiva al check-in"
	}
	return "Formato data non valido, usa YYYYMMDD"
}

// allocateTx computes availability inside the transaction and assigns
// one free room per requested type. The caller must already hold the
// allocation lock.
func (h *BookingHandler) allocateTx(ctx context.Context, tx *sql.Tx, checkIn, checkOut time.Time, roomTypes []string) ([]model.Room, error) {
	all, err := h.Rooms.ListAllTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	booked, err := h.Bookings.ActiveOverlappingRoomIDsTx(ctx, tx, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	return booking.AllocateByType(booking.Available(all, booked), roomTypes)
}

// createBookingTx inserts the booking row plus its room links and
// returns the stored record.
func (h *BookingHandler) createBookingTx(ctx context.Context, tx *sql.Tx, userID string, checkIn, checkOut time.Time, guests int, rooms []model.Room) (model.Booking, error) {
	rec := model.Booking{
		UserID:   userID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
		Status:   model.BookingConfirmed,
	}
	if err := h.Bookings.CreateTx(ctx, tx, &rec); err != nil {
		return model.Booking{}, err
	}
	ids := make([]int64, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID)
	}
	if err := h.Bookings.CreateRoomsBulkTx(ctx, tx, rec.ID, ids); err != nil {
		return model.Booking{}, err
	}
	return rec, nil
}

// bookingResponse is the payload shared by Book and ModifyBooking.
func bookingResponse(rec model.Booking, rooms []model.Room, total float64) echo.Map {
	return echo.Map{
		"message":     "Prenotazione effettuata con successo",
		"booking_id":  rec.ID,
		"check_in":    rec.CheckIn.Format(booking.DateLayoutOut),
		"check_out":   rec.CheckOut.Format(booking.DateLayoutOut),
		"guests":      rec.Guests,
		"rooms":       bookedRooms(rooms),
		"total_price": total,
	}
}

func publishConfirmed(rec model.Booking, rooms []model.Room, total float64) {
	ev := queue.BookingConfirmedEvent{
		BookingID:   rec.ID,
		UserID:      rec.UserID,
		CheckIn:     rec.CheckIn.Format(booking.DateLayoutOut),
		CheckOut:    rec.CheckOut.Format(booking.DateLayoutOut),
		Guests:      rec.Guests,
		RoomNumbers: roomNumbers(rooms),
		TotalPrice:  total,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingConfirmed(context.Background(), ev) }()
}

func publishCancelled(rec model.Booking, rooms []model.Room) {
	ev := queue.BookingCancelledEvent{
		BookingID:   rec.ID,
		UserID:      rec.UserID,
		CheckIn:     rec.CheckIn.Format(booking.DateLayoutOut),
		CheckOut:    rec.CheckOut.Format(booking.DateLayoutOut),
		RoomNumbers: roomNumbers(rooms),
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() { _ = queue_publisher.PublishBookingCancelled(context.Background(), ev) }()
}

// Book handles POST /book. The caller names one room type per room
// it wants; the handler assigns a concrete free room for each, all
// or nothing, and confirms the booking in a single transaction.
func (h *BookingHandler) Book(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req bookReq
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

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	locked := false
	defer func() {
		if !committed {
			if locked {
				_ = h.Bookings.UnlockAllocate(ctx, tx)
			}
			_ = tx.Rollback()
		}
	}()
	if err := h.Bookings.LockAllocate(ctx, tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to acquire allocation lock"})
	}
	locked = true

	selected, err := h.allocateTx(ctx, tx, checkIn, checkOut, req.RoomTypes)
	if err != nil {
		var unavailable *booking.RoomTypeUnavailableError
		if errors.As(err, &unavailable) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("Stanze di tipo %s non disponibili per il periodo richiesto", unavailable.RoomType),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	rec, err := h.createBookingTx(ctx, tx, userID, checkIn, checkOut, req.Guests, selected)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	if err := h.Bookings.UnlockAllocate(ctx, tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release allocation lock"})
	}
	locked = false
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	total := booking.TotalPrice(selected, booking.Nights(checkIn, checkOut))
	publishConfirmed(rec, selected, total)

	return c.JSON(http.StatusCreated, bookingResponse(rec, selected, total))
}

// CancelBooking handles POST /cancel_booking. Cancellation is a
// status flip; the booking and its room links stay on record. A
// booking owned by another user is reported as not found.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Booking ID is required"})
	}
	if req.BookingID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Booking ID is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	rec, err := h.Bookings.GetForUpdateTx(ctx, tx, req.BookingID, userID, isAdmin(c))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Prenotazione non trovata"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if rec.Status == model.BookingCanceled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "La prenotazione è già stata cancellata"})
	}

	rooms, err := h.Bookings.RoomsForBookingTx(ctx, tx, rec.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := h.Bookings.CancelTx(ctx, tx, rec.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	publishCancelled(rec, rooms)

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Booking canceled successfully",
		"booking": echo.Map{
			"booking_id": rec.ID,
			"check_in":   rec.CheckIn.Format(booking.DateLayoutOut),
			"check_out":  rec.CheckOut.Format(booking.DateLayoutOut),
			"guests":     rec.Guests,
			"rooms":      bookedRooms(rooms),
			"status":     model.BookingCanceled,
		},
	})
}

// ModifyBooking handles POST /modify_booking. The old booking is
// canceled and a replacement created in one transaction: if the new
// rooms cannot be allocated the whole operation rolls back and the
// original booking survives untouched. The cancellation is visible
// to the availability query inside the transaction, so the rooms of
// the old booking can be reused by its replacement.
func (h *BookingHandler) ModifyBooking(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req modifyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Dati mancanti"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Dati mancanti"})
	}
	checkIn, checkOut, err := booking.ParseStay(req.NewCheckIn, req.NewCheckOut)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": dateError(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to start transaction"})
	}
	committed := false
	locked := false
	defer func() {
		if !committed {
			if locked {
				_ = h.Bookings.UnlockAllocate(ctx, tx)
			}
			_ = tx.Rollback()
		}
	}()
	if err := h.Bookings.LockAllocate(ctx, tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to acquire allocation lock"})
	}
	locked = true

	old, err := h.Bookings.GetForUpdateTx(ctx, tx, req.BookingID, userID, isAdmin(c))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Prenotazione non trovata"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if old.Status == model.BookingCanceled {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "La prenotazione è già stata cancellata"})
	}

	oldRooms, err := h.Bookings.RoomsForBookingTx(ctx, tx, old.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	// Cancel first so the old booking's rooms count as free for the
	// allocation below. A failed allocation rolls this back.
	if err := h.Bookings.CancelTx(ctx, tx, old.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to cancel booking"})
	}

	selected, err := h.allocateTx(ctx, tx, checkIn, checkOut, req.NewRoomTypes)
	if err != nil {
		var unavailable *booking.RoomTypeUnavailableError
		if errors.As(err, &unavailable) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": fmt.Sprintf("Stanze di tipo %s non disponibili per il periodo richiesto", unavailable.RoomType),
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	rec, err := h.createBookingTx(ctx, tx, old.UserID, checkIn, checkOut, req.NewGuests, selected)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create booking"})
	}

	if err := h.Bookings.UnlockAllocate(ctx, tx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to release allocation lock"})
	}
	locked = false
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to commit transaction"})
	}
	committed = true

	total := booking.TotalPrice(selected, booking.Nights(checkIn, checkOut))
	publishCancelled(old, oldRooms)
	publishConfirmed(rec, selected, total)

	return c.JSON(http.StatusCreated, bookingResponse(rec, selected, total))
}

// UserBookings handles GET /user_bookings: the caller's bookings,
// newest first, each with its rooms.
func (h *BookingHandler) UserBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, bookings)
}
