package model

import "time"

// User represents an application user record as stored in the
// `users` table. User IDs are UUIDv4 strings rather than
// auto-increment integers because the JWT subject claim must be a
// string. The json tags are omitted here because these structs are
// used internally by the repository layer; handlers define separate
// response types with appropriate JSON tags.
//
// Fields:
//  ID           – UUID primary key of the user.
//  Username     – unique username.
//  Email        – unique email address.
//  PasswordHash – bcrypt hashed password.
//  FirstName    – given name.
//  Surname      – family name.
//  Role         – role name ("user" or "admin").
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           string    // users.id
	Username     string    // users.username
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	FirstName    string    // users.first_name
	Surname      string    // users.surname
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Role values accepted in users.role. Non-admins may only cancel
// their own bookings; admins may cancel any booking.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
