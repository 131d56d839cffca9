package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// BookingRepo provides CRUD operations for bookings and their room
// links. A booking groups one or more rooms for a stay; the rooms
// belonging to a booking are stored in the booking_rooms table.
// Multi-step writes run inside a caller-owned transaction so a
// failed link insert never leaves a partial booking behind.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// DB exposes the underlying handle so handlers can begin transactions.
func (r *BookingRepo) DB() *sql.DB { return r.db }

// allocationLock is the MySQL advisory lock serializing the
// availability-check-then-insert sequence. Without it two requests
// could both observe a room as free and double-book it.
const allocationLock = "booking:allocate"

// LockAllocate acquires the allocation advisory lock on the
// transaction's connection. GET_LOCK is connection-scoped, so the
// lock must be taken and released on the same transaction.
func (r *BookingRepo) LockAllocate(ctx context.Context, tx *sql.Tx) error {
	var got sql.NullInt64
	if err := tx.QueryRowContext(ctx, "SELECT GET_LOCK(?, 5)", allocationLock).Scan(&got); err != nil {
		return err
	}
	if !got.Valid || got.Int64 != 1 {
		return context.DeadlineExceeded
	}
	return nil
}

// UnlockAllocate releases the allocation advisory lock.
func (r *BookingRepo) UnlockAllocate(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "SELECT RELEASE_LOCK(?)", allocationLock)
	return err
}

const overlapQuery = `SELECT DISTINCT br.room_id
	FROM bookings b
	JOIN booking_rooms br ON br.booking_id = b.id
	WHERE b.status <> 'canceled' AND b.check_in < ? AND b.check_out > ?`

func scanRoomIDSet(rows *sql.Rows) (map[int64]struct{}, error) {
	defer rows.Close()
	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}
	return ids, rows.Err()
}

// ActiveOverlappingRoomIDs returns the IDs of rooms referenced by
// non-canceled bookings whose stay overlaps [checkIn, checkOut).
// Half-open overlap test: booking.check_in < checkOut AND
// booking.check_out > checkIn.
func (r *BookingRepo) ActiveOverlappingRoomIDs(ctx context.Context, checkIn, checkOut time.Time) (map[int64]struct{}, error) {
	rows, err := r.db.QueryContext(ctx, overlapQuery, checkOut, checkIn)
	if err != nil {
		return nil, err
	}
	return scanRoomIDSet(rows)
}

// ActiveOverlappingRoomIDsTx is ActiveOverlappingRoomIDs inside a
// transaction, locking the matched rows until commit.
func (r *BookingRepo) ActiveOverlappingRoomIDsTx(ctx context.Context, tx *sql.Tx, checkIn, checkOut time.Time) (map[int64]struct{}, error) {
	rows, err := tx.QueryContext(ctx, overlapQuery+" FOR UPDATE", checkOut, checkIn)
	if err != nil {
		return nil, err
	}
	return scanRoomIDSet(rows)
}

// CreateTx inserts a new booking within the scope of an existing
// transaction. It populates the generated ID and timestamps on the
// provided record. The caller must commit or rollback.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, rec *model.Booking) error {
	const q = `INSERT INTO bookings (user_id, check_in, check_out, guests, status) VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, rec.UserID, rec.CheckIn, rec.CheckOut, rec.Guests, rec.Status)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	rec.ID = id
	// Query back the full row to populate timestamps and defaults
	const sel = `SELECT id, user_id, check_in, check_out, guests, status, created_at, updated_at FROM bookings WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, rec.ID).Scan(
		&rec.ID, &rec.UserID, &rec.CheckIn, &rec.CheckOut, &rec.Guests, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
}

// CreateRoomsBulkTx inserts the booking_rooms link rows for a booking
// in a single statement. Passing an empty slice has no effect.
func (r *BookingRepo) CreateRoomsBulkTx(ctx context.Context, tx *sql.Tx, bookingID int64, roomIDs []int64) error {
	if len(roomIDs) == 0 {
		return nil
	}
	query := "INSERT INTO booking_rooms (booking_id, room_id) VALUES "
	args := make([]interface{}, 0, len(roomIDs)*2)
	for i, rid := range roomIDs {
		if i > 0 {
			query += ","
		}
		query += "(?, ?)"
		args = append(args, bookingID, rid)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetForUpdateTx loads a booking for cancellation, locking the row.
// Non-admin callers only see their own bookings: the ownership
// filter is part of the query, so a booking owned by someone else is
// indistinguishable from a missing one (ErrBookingNotFound).
func (r *BookingRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, bookingID int64, userID string, admin bool) (model.Booking, error) {
	q := `SELECT id, user_id, check_in, check_out, guests, status, created_at, updated_at FROM bookings WHERE id = ?`
	args := []interface{}{bookingID}
	if !admin {
		q += " AND user_id = ?"
		args = append(args, userID)
	}
	q += " FOR UPDATE"
	var rec model.Booking
	err := tx.QueryRowContext(ctx, q, args...).Scan(
		&rec.ID, &rec.UserID, &rec.CheckIn, &rec.CheckOut, &rec.Guests, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Booking{}, ErrBookingNotFound
	}
	return rec, err
}

// CancelTx flips a booking's status to canceled. The row and its
// room links are kept; history is never deleted.
func (r *BookingRepo) CancelTx(ctx context.Context, tx *sql.Tx, bookingID int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE bookings SET status = 'canceled' WHERE id = ?", bookingID)
	return err
}

// RoomsForBookingTx returns the rooms linked to a booking, ordered
// by room id for deterministic output.
func (r *BookingRepo) RoomsForBookingTx(ctx context.Context, tx *sql.Tx, bookingID int64) ([]model.Room, error) {
	const q = `SELECT r.id, r.number, r.price, r.capacity, r.room_type
		FROM booking_rooms br
		JOIN rooms r ON r.id = br.room_id
		WHERE br.booking_id = ?
		ORDER BY r.id`
	rows, err := tx.QueryContext(ctx, q, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Price, &rm.Capacity, &rm.RoomType); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

// BookingRoomInfo is the room summary embedded in a user's booking
// list.
type BookingRoomInfo struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Type   string `json:"type"`
}

// BookingDetail is one entry of a user's booking list as returned to
// clients. Dates are formatted YYYY-MM-DD.
type BookingDetail struct {
	ID       int64             `json:"id"`
	CheckIn  string            `json:"check_in"`
	CheckOut string            `json:"check_out"`
	Guests   int               `json:"guests"`
	Status   string            `json:"status"`
	Rooms    []BookingRoomInfo `json:"rooms"`
}

// ListByUser returns every booking of the given user, newest first,
// with its room links hydrated in a second IN(...) query.
func (r *BookingRepo) ListByUser(ctx context.Context, userID string) ([]BookingDetail, error) {
	const q = `SELECT id, check_in, check_out, guests, status
		FROM bookings WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	details := make([]BookingDetail, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var d BookingDetail
		var in, out time.Time
		if err := rows.Scan(&d.ID, &in, &out, &d.Guests, &d.Status); err != nil {
			return nil, err
		}
		d.CheckIn = in.Format("2006-01-02")
		d.CheckOut = out.Format("2006-01-02")
		d.Rooms = []BookingRoomInfo{}
		index[d.ID] = len(details)
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return details, nil
	}
	// Populate rooms for all bookings in a single query
	ids := make([]interface{}, 0, len(details))
	placeholders := make([]string, 0, len(details))
	for _, d := range details {
		ids = append(ids, d.ID)
		placeholders = append(placeholders, "?")
	}
	roomQuery := `SELECT br.booking_id, r.id, r.number, r.room_type
		FROM booking_rooms br
		JOIN rooms r ON r.id = br.room_id
		WHERE br.booking_id IN (` + strings.Join(placeholders, ",") + `)
		ORDER BY br.booking_id, r.id`
	rrows, err := r.db.QueryContext(ctx, roomQuery, ids...)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var bid int64
		var info BookingRoomInfo
		if err := rrows.Scan(&bid, &info.ID, &info.Number, &info.Type); err != nil {
			return nil, err
		}
		idx, ok := index[bid]
		if !ok {
			continue
		}
		details[idx].Rooms = append(details[idx].Rooms, info)
	}
	return details, rrows.Err()
}
