// package testing contains shared testing utilities
package testing

import (
	"errors"

	"github.com/nmakharadze/roster/internal/models"
)

// MockStore is a test double for [repositories.Store] with injectable failures.
type MockStore struct {
	Users   []models.User
	AddErr  error
	ListErr error

	AddCalls  int
	ListCalls int
}

func (m *MockStore) Add(user models.User) error {
	m.AddCalls++
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockStore) ListAll() ([]models.User, error) {
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	users := make([]models.User, len(m.Users))
	copy(users, m.Users)
	return users, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}
