package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// schema contains the CREATE TABLE statements for all tables used by
// the service. Statements are idempotent so EnsureSchema can run on
// every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            CHAR(36)     NOT NULL,
		username      VARCHAR(80)  NOT NULL,
		email         VARCHAR(120) NOT NULL,
		password_hash VARCHAR(200) NOT NULL,
		first_name    VARCHAR(80)  NOT NULL,
		surname       VARCHAR(80)  NOT NULL,
		role          VARCHAR(20)  NOT NULL DEFAULT 'user',
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		UNIQUE KEY uq_users_username (username),
		UNIQUE KEY uq_users_email (email)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS rooms (
		id        BIGINT        NOT NULL AUTO_INCREMENT,
		number    VARCHAR(10)   NOT NULL,
		price     DECIMAL(10,2) NOT NULL,
		capacity  INT           NOT NULL,
		room_type VARCHAR(50)   NOT NULL,
		PRIMARY KEY (id),
		UNIQUE KEY uq_rooms_number (number)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id         BIGINT      NOT NULL AUTO_INCREMENT,
		user_id    CHAR(36)    NOT NULL,
		check_in   DATE        NOT NULL,
		check_out  DATE        NOT NULL,
		guests     INT         NOT NULL,
		status     VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		created_at DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		PRIMARY KEY (id),
		KEY idx_bookings_user (user_id),
		KEY idx_bookings_dates (status, check_in, check_out),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS booking_rooms (
		id         BIGINT NOT NULL AUTO_INCREMENT,
		booking_id BIGINT NOT NULL,
		room_id    BIGINT NOT NULL,
		PRIMARY KEY (id),
		KEY idx_booking_rooms_booking (booking_id),
		KEY idx_booking_rooms_room (room_id),
		CONSTRAINT fk_booking_rooms_booking FOREIGN KEY (booking_id) REFERENCES bookings (id),
		CONSTRAINT fk_booking_rooms_room FOREIGN KEY (room_id) REFERENCES rooms (id)
	) ENGINE=InnoDB`,
}

// EnsureSchema creates the application tables when they do not exist
// yet. It replaces a separate migration step for this small schema.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
