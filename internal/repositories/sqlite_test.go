package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

// setupTestDB creates an in-memory SQLite database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestSQLiteStore(t *testing.T) {
	t.Run("ListAll on empty store", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		store := NewSQLiteStore(db)
		users, err := store.ListAll()
		if err != nil {
			t.Fatalf("ListAll failed: %v", err)
		}
		if len(users) != 0 {
			t.Errorf("expected empty slice, got %d users", len(users))
		}
	})

	t.Run("Add and ListAll preserve insertion order", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		store := NewSQLiteStore(db)
		const n = 5
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

	t.Run("Add rejects invalid users", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		store := NewSQLiteStore(db)
		err := store.Add(models.User{Name: "", Email: "x@example.com", Age: 25})
		if err == nil {
			t.Fatal("expected validation error")
		}
		if !errors.Is(err, shared.ErrInvalidUser) {
			t.Errorf("expected ErrInvalidUser, got %v", err)
		}

		users, _ := store.ListAll()
		if len(users) != 0 {
			t.Errorf("rejected user should not be stored, got %d users", len(users))
		}
	})

	t.Run("corrupt rows fail the listing", func(t *testing.T) {
		db := setupTestDB(t)
		defer db.Close()

		// Bypass Add's validation to simulate external corruption.
		_, err := db.Exec("INSERT INTO users (id, sequence, name, email, age) VALUES (?, ?, ?, ?, ?)",
			shared.GenerateID(), 1, "", "bad@example.com", 30)
		if err != nil {
			t.Fatalf("failed to seed corrupt row: %v", err)
		}

		store := NewSQLiteStore(db)
		_, err = store.ListAll()
		if err == nil {
			t.Fatal("expected error for corrupt row")
		}
		if !errors.Is(err, shared.ErrPersistence) {
			t.Errorf("expected ErrPersistence, got %v", err)
		}
	})
}

func TestNextSequence(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first, err := NextSequence(db, "users")
	if err != nil {
		t.Fatalf("NextSequence failed: %v", err)
	}

	second, err := NextSequence(db, "users")
	if err != nil {
		t.Fatalf("NextSequence failed: %v", err)
	}

	if second != first+1 {
		t.Errorf("expected consecutive sequences, got %d then %d", first, second)
	}
}
