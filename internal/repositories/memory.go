package repositories

import "github.com/nmakharadze/roster/internal/models"

// MemoryStore implements [Store] with an ordered in-process slice.
// Contents are ephemeral and vanish with the process.
type MemoryStore struct {
	users []models.User
}

// NewMemoryStore creates an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: []models.User{}}
}

// Add appends the record. It never fails.
func (s *MemoryStore) Add(user models.User) error {
	s.users = append(s.users, user)
	return nil
}

// ListAll returns a snapshot copy of the stored records in insertion order,
// so callers cannot mutate the store's backing slice.
func (s *MemoryStore) ListAll() ([]models.User, error) {
	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}
