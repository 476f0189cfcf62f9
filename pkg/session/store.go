package session

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"countryhub/pkg/apperrors"
)

type SQLStore struct {
	DB *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{DB: db}
}

func (s *SQLStore) Create(userID string, createdAt, expiresAt time.Time) (string, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", apperrors.ErrStorage)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		UPDATE sessions SET is_active = 0 WHERE user_id = ? AND is_active = 1
	`, userID)
	if err != nil {
		return "", fmt.Errorf("deactivate keys: %w", apperrors.ErrStorage)
	}

	apiKey := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO sessions (api_key, user_id, created_at, expires_at, is_active)
		VALUES (?, ?, ?, ?, 1)
	`, apiKey, userID, createdAt, expiresAt)
	if err != nil {
		return "", fmt.Errorf("insert key: %w", apperrors.ErrStorage)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit tx: %w", apperrors.ErrStorage)
	}
	return apiKey, nil
}

func (s *SQLStore) Delete(apiKey string) (bool, error) {
	res, err := s.DB.Exec(`
		DELETE FROM sessions WHERE api_key = ? AND is_active = 0
	`, apiKey)
	if err != nil {
		return false, fmt.Errorf("delete key: %w", apperrors.ErrStorage)
	}
	return rowsAffected(res)
}

func (s *SQLStore) DeleteExpired(apiKey string, now time.Time) (bool, error) {
	res, err := s.DB.Exec(`
		DELETE FROM sessions WHERE api_key = ? AND expires_at <= ?
	`, apiKey, now)
	if err != nil {
		return false, fmt.Errorf("delete expired key: %w", apperrors.ErrStorage)
	}
	return rowsAffected(res)
}

func (s *SQLStore) GetActive(userID string, now time.Time) (*Session, error) {
	return s.getOne(`
		SELECT api_key, user_id, created_at, expires_at, is_active
		FROM sessions WHERE user_id = ? AND is_active = 1 AND expires_at > ?
	`, userID, now)
}

func (s *SQLStore) GetByUserAndKey(userID, apiKey string) (*Session, error) {
	return s.getOne(`
		SELECT api_key, user_id, created_at, expires_at, is_active
		FROM sessions WHERE user_id = ? AND api_key = ?
	`, userID, apiKey)
}

func (s *SQLStore) GetValid(apiKey string, now time.Time) (*Session, error) {
	return s.getOne(`
		SELECT api_key, user_id, created_at, expires_at, is_active
		FROM sessions WHERE api_key = ? AND is_active = 1 AND expires_at > ?
	`, apiKey, now)
}

func (s *SQLStore) ListByUser(userID string) ([]Session, error) {
	rows, err := s.DB.Query(`
		SELECT api_key, user_id, created_at, expires_at, is_active
		FROM sessions WHERE user_id = ? ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", apperrors.ErrStorage)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.APIKey, &sess.UserID, &sess.CreatedAt, &sess.ExpiresAt, &sess.IsActive); err != nil {
			return nil, fmt.Errorf("scan key: %w", apperrors.ErrStorage)
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", apperrors.ErrStorage)
	}
	return sessions, nil
}

func (s *SQLStore) getOne(query string, args ...any) (*Session, error) {
	var sess Session
	err := s.DB.QueryRow(query, args...).
		Scan(&sess.APIKey, &sess.UserID, &sess.CreatedAt, &sess.ExpiresAt, &sess.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query key: %w", apperrors.ErrStorage)
	}
	return &sess, nil
}

func rowsAffected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", apperrors.ErrStorage)
	}
	return n > 0, nil
}
