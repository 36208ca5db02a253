package repositories

import (
	"database/sql"
	"fmt"

	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

// SQLiteStore implements [Store] over a SQLite users table.
//
// Rows get a generated uuid and an atomic sequence number so listings come
// back in insertion order, matching the file and memory stores.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new [SQLiteStore] with the given database connection.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Add validates the record and inserts it with a generated ID and sequence.
func (s *SQLiteStore) Add(user models.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(s.db, "users")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	query := `
		INSERT INTO users (id, sequence, name, email, age) VALUES (?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query, shared.GenerateID(), sequence, user.Name, user.Email, user.Age)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// ListAll retrieves every user ordered by sequence, re-validating each row
// so corrupt data surfaces as a persistence failure.
func (s *SQLiteStore) ListAll() ([]models.User, error) {
	query := `
		SELECT name, email, age
		FROM users
		ORDER BY sequence ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var (
			name  string
			email string
			age   int
		)

		if err := rows.Scan(&name, &email, &age); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}

		user, err := models.NewUser(name, email, age)
		if err != nil {
			return nil, fmt.Errorf("%w: stored user failed validation: %v", shared.ErrPersistence, err)
		}

		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return users, nil
}
