package repositories

import (
	"fmt"
	"testing"

	"github.com/nmakharadze/roster/internal/models"
)

func TestMemoryStore(t *testing.T) {
	t.Run("ListAll on empty store", func(t *testing.T) {
		store := NewMemoryStore()

		users, err := store.ListAll()
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected empty slice, got %d users", len(users))
		}
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		store := NewMemoryStore()

		const n = 10
		for i := 0; i < n; i++ {
			user := models.User{
				Name:  fmt.Sprintf("User %d", i),
				Email: fmt.Sprintf("user%d@example.com", i),
				Age:   20 + i,
			}
			if err := store.Add(user); err != nil {
				t.Fatalf("Add failed: %v", err)
			}
		}

		users, err := store.ListAll()
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(users) != n {
			t.Fatalf("expected %d users, got %d", n, len(users))
		}

		for i, user := range users {
			if user.Name != fmt.Sprintf("User %d", i) {
				t.Errorf("user %d out of order: %v", i, user)
			}
		}
	})

	t.Run("duplicates are permitted", func(t *testing.T) {
		store := NewMemoryStore()
		user := models.User{Name: "Ana", Email: "ana@example.com", Age: 22}

		if err := store.Add(user); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if err := store.Add(user); err != nil {
			t.Fatalf("Add failed: %v", err)
		}

		users, _ := store.ListAll()
		if len(users) != 2 {
			t.Errorf("expected 2 users, got %d", len(users))
		}
	})

	t.Run("ListAll returns a snapshot", func(t *testing.T) {
		store := NewMemoryStore()
		store.Add(models.User{Name: "Ana", Email: "ana@example.com", Age: 22})

		users, _ := store.ListAll()
		users[0].Name = "mutated"

		again, _ := store.ListAll()
		if again[0].Name != "Ana" {
			t.Error("mutating the returned slice should not affect the store")
		}
	})
}
