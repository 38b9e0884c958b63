package services

import (
	"github.com/vikasavnish/marketpulse/internal/models"
	"github.com/vikasavnish/marketpulse/internal/store"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetUserByID(id string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	CreateUser(user models.NewUser) (models.User, error)
	UpdateUser(id string, patch models.UserPatch) (models.User, error)
}

// userService implements the UserService interface
type userService struct {
	store *store.Store
}

// NewUserService creates a new user service
func NewUserService(s *store.Store) UserService {
	return &userService{
		store: s,
	}
}

func (s *userService) GetUserByID(id string) (models.User, error) {
	return s.store.UserByID(id)
}

func (s *userService) GetUserByUsername(username string) (models.User, error) {
	return s.store.UserByUsername(username)
}

func (s *userService) CreateUser(user models.NewUser) (models.User, error) {
	return s.store.CreateUser(user)
}

// UpdateUser merges the patch over the existing user
func (s *userService) UpdateUser(id string, patch models.UserPatch) (models.User, error) {
	return s.store.UpdateUser(id, patch)
}
