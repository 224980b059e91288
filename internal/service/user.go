package service

import (
	"wordtrainer/internal/repository"
)

// UserService handles user registration
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// EnsureUserExists registers the user and seeds the default word set on
// first contact. Safe to call on every interaction.
func (s *UserService) EnsureUserExists(userID int64) error {
	return s.userRepo.EnsureUserExists(userID)
}
