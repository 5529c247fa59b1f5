package store

import (
	"strings"

	"github.com/lazaroperez207/agro-en-casa/internal/models"
)

// GetUsers returns all accounts
func (s *Store) GetUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// GetUserByID retrieves a user by ID
func (s *Store) GetUserByID(id int64) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, notFound("user", id)
}

// FindUserByEmail looks up a user by email, case-insensitively.
// The boolean reports whether a match exists.
func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser appends a new account and assigns its ID
func (s *Store) CreateUser(user *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = s.allocUserID()
	s.users = append(s.users, *user)
}

// DeleteUser removes an account by ID
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return notFound("user", id)
}

// SetUserPassword replaces a user's password
func (s *Store) SetUserPassword(id int64, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Password = password
			return nil
		}
	}
	return notFound("user", id)
}
