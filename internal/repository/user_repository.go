package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/hotel-room-booking/internal/model"
	"github.com/iliyamo/hotel-room-booking/internal/utils"
)

// UserRepo provides persistence for application users.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password, assigns a fresh UUID and inserts the
// user with the default "user" role. It returns the stored user.
// Duplicate username or email surface as ErrUsernameExists /
// ErrEmailExists via the unique-key name in MySQL error 1062.
func (r *UserRepo) Create(ctx context.Context, username, email, password, firstName, surname string, cost int) (model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return model.User{}, err
	}
	id := uuid.NewString()
	_, err = r.DB.ExecContext(ctx,
		"INSERT INTO users (id, username, email, password_hash, first_name, surname, role) VALUES (?,?,?,?,?,?,?)",
		id, username, email, hash, firstName, surname, model.RoleUser)
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "1062") {
			if strings.Contains(msg, "uq_users_email") {
				return model.User{}, ErrEmailExists
			}
			return model.User{}, ErrUsernameExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// UsernameTaken reports whether a user with the given username exists.
func (r *UserRepo) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE username=?", strings.TrimSpace(username)).Scan(&n)
	return n > 0, err
}

// EmailTaken reports whether a user with the given email exists.
func (r *UserRepo) EmailTaken(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM users WHERE email=?", strings.ToLower(strings.TrimSpace(email))).Scan(&n)
	return n > 0, err
}

// GetByIdentifier fetches a user whose username OR email matches the
// identifier. Login accepts either.
func (r *UserRepo) GetByIdentifier(ctx context.Context, identifier string) (model.User, error) {
	identifier = strings.TrimSpace(identifier)
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,first_name,surname,role,created_at,updated_at FROM users WHERE username=? OR email=? LIMIT 1",
		identifier, strings.ToLower(identifier)).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.Surname, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,username,email,password_hash,first_name,surname,role,created_at,updated_at FROM users WHERE id=? LIMIT 1",
		id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.Surname, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
