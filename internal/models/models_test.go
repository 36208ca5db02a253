package models

import (
	"errors"
	"testing"

	"github.com/nmakharadze/roster/internal/shared"
)

func TestNewUser(t *testing.T) {
	t.Run("valid fields round-trip", func(t *testing.T) {
		user, err := NewUser("Ana", "ana@example.com", 22)
		if err != nil {
			t.Fatalf("NewUser failed: %v", err)
		}

		if user.Name != "Ana" {
			t.Errorf("expected name Ana, got %s", user.Name)
		}
		if user.Email != "ana@example.com" {
			t.Errorf("expected email ana@example.com, got %s", user.Email)
		}
		if user.Age != 22 {
			t.Errorf("expected age 22, got %d", user.Age)
		}
	})

	t.Run("non-ASCII names are preserved", func(t *testing.T) {
		user, err := NewUser("გიორგი", "giorgi@example.com", 23)
		if err != nil {
			t.Fatalf("NewUser failed: %v", err)
		}
		if user.Name != "გიორგი" {
			t.Errorf("expected name გიორგი, got %s", user.Name)
		}
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		tc := []struct {
			name  string
			uname string
			email string
			age   int
		}{
			{name: "empty name", uname: "", email: "x@example.com", age: 25},
			{name: "empty email", uname: "Nino", email: "", age: 30},
			{name: "zero age", uname: "Nino", email: "nino@example.com", age: 0},
			{name: "negative age", uname: "Nino", email: "nino@example.com", age: -4},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewUser(tt.uname, tt.email, tt.age)
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, shared.ErrInvalidUser) {
					t.Errorf("expected ErrInvalidUser, got %v", err)
				}
			})
		}
	})
}

func TestUserString(t *testing.T) {
	user := User{Name: "Ana", Email: "ana@example.com", Age: 22}
	want := `User(name="Ana", email="ana@example.com", age=22)`
	if got := user.String(); got != want {
		t.Errorf("String() = %v, want %v", got, want)
	}
}
