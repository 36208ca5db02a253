package formatter

import (
	"errors"
	"strings"
	"testing"

	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/shared"
)

func TestUserRow(t *testing.T) {
	user := models.User{Name: "Ana", Email: "ana@example.com", Age: 22}

	row := UserRow(user)
	if len(row) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(row))
	}
	if row[0] != "Ana" || row[1] != "ana@example.com" || row[2] != "22" {
		t.Errorf("unexpected row: %v", row)
	}
}

func TestParseUserRow(t *testing.T) {
	t.Run("valid row", func(t *testing.T) {
		user, err := ParseUserRow([]string{"Ana", "ana@example.com", "22"})
		if err != nil {
			t.Fatalf("ParseUserRow failed: %v", err)
		}
		if user.Name != "Ana" || user.Email != "ana@example.com" || user.Age != 22 {
			t.Errorf("unexpected user: %v", user)
		}
	})

	t.Run("round-trips UserRow", func(t *testing.T) {
		orig := models.User{Name: "გიორგი", Email: "giorgi@example.com", Age: 23}
		user, err := ParseUserRow(UserRow(orig))
		if err != nil {
			t.Fatalf("ParseUserRow failed: %v", err)
		}
		if user != orig {
			t.Errorf("round-trip mismatch: got %v, want %v", user, orig)
		}
	})

	t.Run("defective rows wrap ErrPersistence", func(t *testing.T) {
		tc := []struct {
			name string
			row  []string
		}{
			{name: "too few columns", row: []string{"Ana", "ana@example.com"}},
			{name: "too many columns", row: []string{"Ana", "ana@example.com", "22", "extra"}},
			{name: "non-integer age", row: []string{"Ana", "ana@example.com", "twenty"}},
			{name: "empty name", row: []string{"", "ana@example.com", "22"}},
			{name: "non-positive age", row: []string{"Ana", "ana@example.com", "0"}},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseUserRow(tt.row)
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, shared.ErrPersistence) {
					t.Errorf("expected ErrPersistence, got %v", err)
				}
			})
		}
	})
}

func TestUsersToCSV(t *testing.T) {
	users := []models.User{
		{Name: "Ana", Email: "ana@example.com", Age: 22},
		{Name: "Smith, John", Email: "john@example.com", Age: 40},
	}

	data, err := UsersToCSV(users)
	if err != nil {
		t.Fatalf("UsersToCSV failed: %v", err)
	}

	output := string(data)
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), output)
	}

	if strings.Contains(lines[0], "name,email,age") {
		t.Error("CSV should not contain a header row")
	}
	if lines[0] != "Ana,ana@example.com,22" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != `"Smith, John",john@example.com,40` {
		t.Errorf("expected quoted name with comma, got %q", lines[1])
	}
}

func TestUsersToText(t *testing.T) {
	t.Run("empty listing", func(t *testing.T) {
		output := string(UsersToText([]models.User{}))
		if !strings.Contains(output, "Users: 0") {
			t.Errorf("expected zero count, got %q", output)
		}
	})

	t.Run("numbered entries in order", func(t *testing.T) {
		users := []models.User{
			{Name: "Ana", Email: "ana@example.com", Age: 22},
			{Name: "Nino", Email: "nino@example.com", Age: 30},
		}

		output := string(UsersToText(users))
		if !strings.Contains(output, "1. Ana <ana@example.com> (age 22)") {
			t.Errorf("missing first entry: %q", output)
		}
		if !strings.Contains(output, "2. Nino <nino@example.com> (age 30)") {
			t.Errorf("missing second entry: %q", output)
		}
	})
}
