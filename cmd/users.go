package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/nmakharadze/roster/internal/formatter"
	"github.com/nmakharadze/roster/internal/shared"
	"github.com/urfave/cli/v3"
)

// UsersAdd validates the flag values and stores the resulting record.
//
// A validation failure prints a rejection message and returns the wrapped
// error so the process exits non-zero without a fatal log.
func (r *Runner) UsersAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	email := cmd.String("email")
	age := cmd.Int("age")

	user, err := r.engine.AddUser(name, email, age)
	if err != nil {
		if errors.Is(err, shared.ErrInvalidUser) {
			r.writePlain("Error: %v\n", err)
			return err
		}
		return fmt.Errorf("failed to add user: %w", err)
	}

	r.writePlain("User %s added successfully!\n", user.Name)
	return nil
}

// UsersList prints every stored record in insertion order.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	users, err := r.engine.ListUsers()
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	if cmd.Bool("csv") {
		data, err := formatter.UsersToCSV(users)
		if err != nil {
			return fmt.Errorf("failed to render CSV: %w", err)
		}
		return r.writePlain("%s", data)
	}

	if len(users) == 0 {
		r.writePlain("No users found.\n")
		return nil
	}

	return r.writePlain("%s", formatter.UsersToText(users))
}
