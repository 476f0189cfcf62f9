package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"countryhub/pkg/apperrors"
	"countryhub/pkg/user"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(u *user.User) error {
	return m.Called(u).Error(0)
}

func (m *mockRepo) FindByEmail(email string) (*user.User, error) {
	args := m.Called(email)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByUsername(username string) (*user.User, error) {
	args := m.Called(username)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByID(id string) (*user.User, error) {
	args := m.Called(id)
	if u := args.Get(0); u != nil {
		return u.(*user.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "new@example.com").Return(nil, nil)
		repo.On("FindByUsername", "newuser").Return(nil, nil)
		repo.On("Create", mock.AnythingOfType("*user.User")).Return(nil)

		u, err := svc.Register("new@example.com", "securepass", "newuser")

		assert.NoError(t, err)
		assert.NotNil(t, u)
		assert.Equal(t, "newuser", u.Username)
		assert.NotEqual(t, "securepass", u.Password)
		assert.Len(t, u.ID, 24)
	})

	t.Run("email already exists", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "taken@example.com").Return(&user.User{Email: "taken@example.com"}, nil)

		u, err := svc.Register("taken@example.com", "pass", "fresh")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("username already exists", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "fresh@example.com").Return(nil, nil)
		repo.On("FindByUsername", "taken").Return(&user.User{Username: "taken"}, nil)

		u, err := svc.Register("fresh@example.com", "pass", "taken")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing fields", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		u, err := svc.Register("", "pass", "name")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, u)

		u, err = svc.Register("a@b.c", "", "name")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, u)

		u, err = svc.Register("a@b.c", "pass", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, u)
	})

	t.Run("malformed email", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		u, err := svc.Register("not-an-email", "pass", "name")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Nil(t, u)
	})
}

func TestService_Authenticate(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "valid@example.com").Return(&user.User{
			ID:       "uid",
			Email:    "valid@example.com",
			Username: "valid",
			Password: string(hashed),
		}, nil)

		u, err := svc.Authenticate("valid@example.com", "correct")

		assert.NoError(t, err)
		assert.Equal(t, "valid", u.Username)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "ghost@example.com").Return(nil, nil)

		u, err := svc.Authenticate("ghost@example.com", "any")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, apperrors.ErrAuth)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockRepo)
		svc := user.NewService(repo)

		repo.On("FindByEmail", "valid@example.com").Return(&user.User{
			ID:       "uid",
			Email:    "valid@example.com",
			Username: "valid",
			Password: string(hashed),
		}, nil)

		u, err := svc.Authenticate("valid@example.com", "wrong")

		assert.Error(t, err)
		assert.Nil(t, u)
		assert.ErrorIs(t, err, apperrors.ErrAuth)
	})
}

func TestService_Get(t *testing.T) {
	repo := new(mockRepo)
	svc := user.NewService(repo)

	repo.On("FindByID", "uid").Return(&user.User{ID: "uid", Username: "valid"}, nil)
	repo.On("FindByID", "ghost").Return(nil, nil)

	u, err := svc.Get("uid")
	assert.NoError(t, err)
	assert.Equal(t, "valid", u.Username)

	u, err = svc.Get("ghost")
	assert.Error(t, err)
	assert.Nil(t, u)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
