// package models defines the data model for the user roster utility
package models

import (
	"fmt"

	"github.com/nmakharadze/roster/internal/shared"
)

// User is a validated user record. Users are constructed through [NewUser],
// which rejects invalid field values, so a User in circulation always holds
// a non-empty name, a non-empty email, and a positive age.
//
// Users carry value semantics: stores receive and return copies, and there
// are no setters, so a record never changes after construction.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Age   int    `json:"age"`
}

// NewUser constructs a validated User from raw field values.
// Returns an error wrapping [shared.ErrInvalidUser] when any field is invalid.
func NewUser(name, email string, age int) (User, error) {
	user := User{Name: name, Email: email, Age: age}
	if err := user.Validate(); err != nil {
		return User{}, err
	}
	return user, nil
}

// Validate checks the user's field values and returns an error wrapping
// [shared.ErrInvalidUser] describing the first failing field.
func (u User) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("%w: name must not be empty", shared.ErrInvalidUser)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email must not be empty", shared.ErrInvalidUser)
	}
	if u.Age <= 0 {
		return fmt.Errorf("%w: age must be greater than zero, got %d", shared.ErrInvalidUser, u.Age)
	}
	return nil
}

// String renders the user for console listings.
func (u User) String() string {
	return fmt.Sprintf("User(name=%q, email=%q, age=%d)", u.Name, u.Email, u.Age)
}
