package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RoomRepo provides read access to the room catalog and the one-time
// seeding insert. Rooms are immutable after seeding.
type RoomRepo struct{ db *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

const roomColumns = "id, number, price, capacity, room_type"

func scanRooms(rows *sql.Rows) ([]model.Room, error) {
	defer rows.Close()
	rooms := make([]model.Room, 0)
	for rows.Next() {
		var r model.Room
		if err := rows.Scan(&r.ID, &r.Number, &r.Price, &r.Capacity, &r.RoomType); err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return rooms, rows.Err()
}

// ListAll returns the whole catalog ordered by id. The order is the
// "fetch order" the suggestion heuristic's fallback depends on.
func (r *RoomRepo) ListAll(ctx context.Context) ([]model.Room, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// ListAllTx is ListAll inside an existing transaction.
func (r *RoomRepo) ListAllTx(ctx context.Context, tx *sql.Tx) ([]model.Room, error) {
	rows, err := tx.QueryContext(ctx, "SELECT "+roomColumns+" FROM rooms ORDER BY id")
	if err != nil {
		return nil, err
	}
	return scanRooms(rows)
}

// CountAll returns the number of rooms in the catalog.
func (r *RoomRepo) CountAll(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rooms").Scan(&n)
	return n, err
}

// SeedBulk inserts the given rooms in a single statement. Passing an
// empty slice has no effect and returns nil.
func (r *RoomRepo) SeedBulk(ctx context.Context, rooms []model.Room) error {
	if len(rooms) == 0 {
		return nil
	}
	query := "INSERT INTO rooms (number, price, capacity, room_type) VALUES "
	args := make([]interface{}, 0, len(rooms)*4)
	for i, rm := range rooms {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, rm.Number, rm.Price, rm.Capacity, rm.RoomType)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}
