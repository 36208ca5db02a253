// package formatter converts user records to and from their external
// representations (CSV rows, plain-text listings)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

// UserRow renders a user as a CSV row with columns name, email, age.
func UserRow(user models.User) []string {
	return []string{user.Name, user.Email, strconv.Itoa(user.Age)}
}

// ParseUserRow rehydrates a CSV row into a validated user.
//
// Any defect — wrong column count, a non-integer age, or field values that
// fail validation — is a persistence failure: the row was written by us, so
// a bad row means the file is corrupt, and the error wraps
// [shared.ErrPersistence] rather than the validation sentinel.
func ParseUserRow(row []string) (models.User, error) {
	if len(row) != 3 {
		return models.User{}, fmt.Errorf("%w: expected 3 columns, got %d", shared.ErrPersistence, len(row))
	}

	age, err := strconv.Atoi(row[2])
	if err != nil {
		return models.User{}, fmt.Errorf("%w: age %q is not an integer", shared.ErrPersistence, row[2])
	}

	user, err := models.NewUser(row[0], row[1], age)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", shared.ErrPersistence, err)
	}

	return user, nil
}

// UsersToCSV renders users as CSV with one record per line and no header row,
// the same layout the file store appends.
func UsersToCSV(users []models.User) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	for _, user := range users {
		if err := writer.Write(UserRow(user)); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// UsersToText renders a numbered plain-text listing for console output.
func UsersToText(users []models.User) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Users: %d\n\n", len(users)))
	for i, user := range users {
		buf.WriteString(fmt.Sprintf("%d. %s <%s> (age %d)\n", i+1, user.Name, user.Email, user.Age))
	}

	return buf.Bytes()
}
