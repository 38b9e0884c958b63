package store

import (
	"fmt"

	"github.com/vikasavnish/marketpulse/internal/models"
)

// UserByID returns the user with the given id
func (s *Store) UserByID(id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users.Get(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return copyUser(user), nil
}

// UserByUsername returns the first user, in insertion order, with the given username.
func (s *Store) UserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.findUserByUsername(username)
	if !ok {
		return models.User{}, fmt.Errorf("user %q: %w", username, ErrNotFound)
	}
	return copyUser(user), nil
}

func (s *Store) findUserByUsername(username string) (models.User, bool) {
	for pair := s.users.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value.Username == username {
			return pair.Value, true
		}
	}
	return models.User{}, false
}

// CreateUser stores a new user. InvestorType defaults to balanced and a nil
// interest list is stored as empty.
func (s *Store) CreateUser(in models.NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.findUserByUsername(in.Username); taken {
		return models.User{}, fmt.Errorf("username %q: %w", in.Username, ErrDuplicate)
	}

	investorType := in.InvestorType
	if investorType == "" {
		investorType = models.InvestorBalanced
	}

	user := models.User{
		ID:           s.newID(),
		Username:     in.Username,
		Password:     in.Password,
		InvestorType: investorType,
		Interests:    cloneOrEmpty(in.Interests),
		CreatedAt:    s.now(),
	}
	s.users.Set(user.ID, user)

	return copyUser(user), nil
}

// UpdateUser merges patch over the stored user. CreatedAt is never changed.
func (s *Store) UpdateUser(id string, patch models.UserPatch) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.Get(id)
	if !ok {
		return models.User{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}

	if patch.Username != nil && *patch.Username != user.Username {
		if _, taken := s.findUserByUsername(*patch.Username); taken {
			return models.User{}, fmt.Errorf("username %q: %w", *patch.Username, ErrDuplicate)
		}
		user.Username = *patch.Username
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	if patch.InvestorType != nil {
		user.InvestorType = *patch.InvestorType
	}
	if patch.Interests != nil {
		user.Interests = cloneOrEmpty(*patch.Interests)
	}

	s.users.Set(id, user)
	return copyUser(user), nil
}
