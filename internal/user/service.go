package user

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

// Service handles user business logic.
type Service struct {
	repo *Repository
}

// NewService creates a new user service.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new user.
func (s *Service) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a user by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Exists reports whether a user with the given id exists.
func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// List retrieves all users.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Update modifies a user's profile.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateUserRequest) (*User, error) {
	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UsernamesByIDs returns display names for the given user ids.
func (s *Service) UsernamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	return s.repo.UsernamesByIDs(ctx, ids)
}
