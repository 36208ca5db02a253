// package repositories provides the pluggable persistence layer for user records.
package repositories

import (
	"database/sql"
	"fmt"

	"github.com/nmakharadze/roster/internal/models"
)

// Store is the storage strategy contract. Implementations persist user
// records in insertion order; duplicates are allowed and records carry no
// identity beyond their field values.
type Store interface {
	// Add persists a single user record.
	Add(user models.User) error

	// ListAll returns every stored record in insertion order.
	// An empty store yields an empty slice, not an error.
	ListAll() ([]models.User, error)
}

// NextSequence atomically increments and returns the next sequence number for the given table.
//
// Sequence numbers give database-backed stores a stable insertion order
// independent of row IDs and timestamps. They are not exposed in CLI output.
func NextSequence(db *sql.DB, table string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	sequenceTable := table + "_sequence"

	_, err = tx.Exec(fmt.Sprintf("UPDATE %s SET value = value + 1 WHERE id = 1", sequenceTable))
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence: %w", err)
	}

	var sequence int
	err = tx.QueryRow(fmt.Sprintf("SELECT value FROM %s WHERE id = 1", sequenceTable)).Scan(&sequence)
	if err != nil {
		return 0, fmt.Errorf("failed to get sequence value: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit sequence transaction: %w", err)
	}

	return sequence, nil
}
