package session

import (
	"time"

	"countryhub/pkg/apperrors"
	"countryhub/pkg/user"
)

type ManagerInterface interface {
	Login(email, password string) (*user.User, string, error)
	GenerateKey(userID string) (string, error)
	DeleteKey(userID, apiKey string) error
	ListKeys(userID string) ([]Session, error)
	Logout(apiKey string) error
}

type Manager struct {
	Store Store
	Users user.ServiceInterface
	// KeyTTL is fixed at issuance; expiry is never extended.
	KeyTTL time.Duration
	// AllowExpiredDeletion lets an expired key be deleted even while its
	// stored flag still reads active.
	AllowExpiredDeletion bool
}

func NewManager(store Store, users user.ServiceInterface, keyTTL time.Duration, allowExpiredDeletion bool) *Manager {
	return &Manager{
		Store:                store,
		Users:                users,
		KeyTTL:               keyTTL,
		AllowExpiredDeletion: allowExpiredDeletion,
	}
}

// Login checks credentials and returns the user's current valid key,
// issuing a fresh one only when none exists.
func (m *Manager) Login(email, password string) (*user.User, string, error) {
	u, err := m.Users.Authenticate(email, password)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC().Truncate(time.Second)

	active, err := m.Store.GetActive(u.ID, now)
	if err != nil {
		return nil, "", err
	}
	if active != nil {
		return u, active.APIKey, nil
	}

	apiKey, err := m.Store.Create(u.ID, now, now.Add(m.KeyTTL))
	if err != nil {
		return nil, "", err
	}
	return u, apiKey, nil
}

// GenerateKey always issues: the store transaction supersedes whatever key
// was active before.
func (m *Manager) GenerateKey(userID string) (string, error) {
	if _, err := m.Users.Get(userID); err != nil {
		return "", err
	}

	now := time.Now().UTC().Truncate(time.Second)
	return m.Store.Create(userID, now, now.Add(m.KeyTTL))
}

func (m *Manager) DeleteKey(userID, apiKey string) error {
	if _, err := m.Users.Get(userID); err != nil {
		return err
	}

	sess, err := m.Store.GetByUserAndKey(userID, apiKey)
	if err != nil {
		return err
	}
	if sess == nil {
		return apperrors.E(apperrors.ErrNotFound, "api key not found for user")
	}

	now := time.Now().UTC()

	if !sess.IsActive {
		if _, err := m.Store.Delete(apiKey); err != nil {
			return err
		}
		return nil
	}

	if m.AllowExpiredDeletion && !sess.ExpiresAt.After(now) {
		if _, err := m.Store.DeleteExpired(apiKey, now); err != nil {
			return err
		}
		return nil
	}

	return apperrors.E(apperrors.ErrConflict, "cannot delete an active key")
}

func (m *Manager) ListKeys(userID string) ([]Session, error) {
	if _, err := m.Users.Get(userID); err != nil {
		return nil, err
	}
	return m.Store.ListByUser(userID)
}

// Logout is best effort: the store predicate leaves active keys in place, so
// a user can log back in and keep the same key.
func (m *Manager) Logout(apiKey string) error {
	_, err := m.Store.Delete(apiKey)
	return err
}
