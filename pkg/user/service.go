package user

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"countryhub/pkg/apperrors"
	"countryhub/pkg/generator"
)

type ServiceInterface interface {
	Register(email, password, username string) (*User, error)
	Authenticate(email, password string) (*User, error)
	Get(id string) (*User, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Register(email, password, username string) (*User, error) {
	if email == "" || password == "" || username == "" {
		return nil, apperrors.E(apperrors.ErrValidation, "email, password and username are required")
	}
	if !strings.Contains(email, "@") {
		return nil, apperrors.E(apperrors.ErrValidation, "invalid email")
	}

	exist, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if exist == nil {
		if exist, err = s.Repo.FindByUsername(username); err != nil {
			return nil, err
		}
	}
	if exist != nil {
		return nil, apperrors.E(apperrors.ErrValidation, "user already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	userID, err := generator.UserID()
	if err != nil {
		return nil, fmt.Errorf("UserID gen error: %s", err)
	}

	user := &User{
		ID:       userID,
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Authenticate(email, password string) (*User, error) {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.E(apperrors.ErrAuth, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.E(apperrors.ErrAuth, "invalid credentials")
	}

	return user, nil
}

func (s *Service) Get(id string) (*User, error) {
	user, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.E(apperrors.ErrNotFound, "user not found")
	}
	return user, nil
}
