package service

import (
	"errors"
	"fmt"

	"resto-backend/internal/domain"
)

var ErrUserExists = errors.New("username or email is already registered")

type AccountService struct {
	repo AccountRepository
}

func NewAccountService(repo AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Register creates the user and, in the same step, its profile and cart.
// This replaces any notion of profile auto-creation as a side effect: it is
// an explicit part of registration.
func (s *AccountService) Register(username, email string) (*domain.User, *domain.Profile, error) {
	if username == "" || email == "" {
		return nil, nil, fmt.Errorf("%w: username and email are required", ErrValidation)
	}

	user := &domain.User{Username: username, Email: email}
	profile := &domain.Profile{Preferences: domain.Preferences{}}
	if err := s.repo.RegisterUser(user, profile); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, nil, ErrUserExists
		}
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *AccountService) GetProfile(userID int) (*domain.Profile, error) {
	return s.repo.GetProfile(userID)
}

func (s *AccountService) UpdateProfile(p *domain.Profile) error {
	if p.UserID <= 0 {
		return fmt.Errorf("%w: profile must reference a user", ErrValidation)
	}
	return s.repo.UpdateProfile(p)
}

var _ AccountServiceInterface = (*AccountService)(nil)
