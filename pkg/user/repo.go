package user

import (
	"database/sql"
	"errors"
	"fmt"

	"countryhub/pkg/apperrors"
)

type SQLRepo struct {
	DB *sql.DB
}

func NewSQLRepo(db *sql.DB) *SQLRepo {
	return &SQLRepo{DB: db}
}

func (r *SQLRepo) Create(user *User) error {
	_, err := r.DB.Exec(
		"INSERT INTO users (id, email, username, password) VALUES (?, ?, ?, ?)",
		user.ID, user.Email, user.Username, user.Password,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", apperrors.ErrStorage)
	}
	return nil
}

// FindByEmail returns (nil, nil) when no user has the given email.
func (r *SQLRepo) FindByEmail(email string) (*User, error) {
	return r.findOne("SELECT id, email, username, password FROM users WHERE email = ?", email)
}

// FindByUsername returns (nil, nil) when no user has the given username.
func (r *SQLRepo) FindByUsername(username string) (*User, error) {
	return r.findOne("SELECT id, email, username, password FROM users WHERE username = ?", username)
}

// FindByID returns (nil, nil) when no user has the given id.
func (r *SQLRepo) FindByID(id string) (*User, error) {
	return r.findOne("SELECT id, email, username, password FROM users WHERE id = ?", id)
}

func (r *SQLRepo) findOne(query string, arg string) (*User, error) {
	var u User
	err := r.DB.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user: %w", apperrors.ErrStorage)
	}
	return &u, nil
}
