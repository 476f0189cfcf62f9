// Package session owns the API-key lifecycle: at most one active key per
// user, 30-day expiry fixed at issuance, deletion of inactive keys only.
package session

import "time"

type Session struct {
	APIKey    string    `json:"api_key"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	IsActive  bool      `json:"is_active"`
}

// Valid reports whether the key is usable at the given instant. "Usable" is
// always this derived predicate, never the stored flag alone.
func (s *Session) Valid(now time.Time) bool {
	return s.IsActive && s.ExpiresAt.After(now)
}

type Store interface {
	// Create deactivates any active key the user holds and inserts a fresh
	// one, atomically. Returns the new key.
	Create(userID string, createdAt, expiresAt time.Time) (string, error)
	// Delete removes the row only if it is inactive. Reports whether a row
	// was removed.
	Delete(apiKey string) (bool, error)
	// DeleteExpired removes the row regardless of its flag, provided it has
	// expired as of now. Reports whether a row was removed.
	DeleteExpired(apiKey string, now time.Time) (bool, error)
	// GetActive returns the user's active, unexpired key, or nil.
	GetActive(userID string, now time.Time) (*Session, error)
	// GetByUserAndKey returns the exact row in any state, or nil.
	GetByUserAndKey(userID, apiKey string) (*Session, error)
	// GetValid resolves a presented key to its session if active and
	// unexpired, or nil.
	GetValid(apiKey string, now time.Time) (*Session, error)
	// ListByUser returns every key the user ever held, any state.
	ListByUser(userID string) ([]Session, error)
}
