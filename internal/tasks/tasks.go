// package tasks orchestrates user record operations over a storage strategy.
package tasks

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/repositories"
	"github.com/nmakharadze/roster/internal/shared"
)

// UserEngine implements the user management operations: add, list and
// report export. It validates input, delegates persistence to the injected
// [repositories.Store], and logs every public operation before delegating.
type UserEngine struct {
	store  repositories.Store
	logger *log.Logger
}

// NewUserEngine creates a new UserEngine over the given store.
// A nil logger falls back to the default stderr logger.
func NewUserEngine(store repositories.Store, logger *log.Logger) *UserEngine {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &UserEngine{store: store, logger: logger}
}

// logInvocation records the operation name, wall-clock timestamp and a fresh
// invocation id before the operation runs. This is the cross-cutting
// observability hook; it carries no state and changes no behavior.
func (e *UserEngine) logInvocation(op string) {
	e.logger.Info("calling operation",
		"op", op,
		"at", time.Now().Format(time.TimeOnly),
		"invocation", shared.GenerateID(),
	)
}

// AddUser validates the raw field values and persists the resulting record.
//
// A validation failure is an expected, recoverable outcome: the error wraps
// [shared.ErrInvalidUser], nothing is stored, and callers report it without
// aborting the process. Store failures propagate as-is.
func (e *UserEngine) AddUser(name, email string, age int) (models.User, error) {
	e.logInvocation("add_user")

	if e.store == nil {
		return models.User{}, shared.ErrStoreUnavailable
	}

	user, err := models.NewUser(name, email, age)
	if err != nil {
		return models.User{}, err
	}

	if err := e.store.Add(user); err != nil {
		return models.User{}, fmt.Errorf("failed to store user: %w", err)
	}

	e.logger.Info("user added", "name", user.Name)
	return user, nil
}

// ListUsers retrieves every stored record in insertion order.
func (e *UserEngine) ListUsers() ([]models.User, error) {
	e.logInvocation("list_users")

	if e.store == nil {
		return nil, shared.ErrStoreUnavailable
	}

	users, err := e.store.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}
