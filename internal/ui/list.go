package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/nmakharadze/roster/internal/models"
)

var _ list.Item = userItem{}

// userItem wraps [models.User] to implement [list.Item].
type userItem struct {
	user models.User
}

func (i userItem) FilterValue() string { return i.user.Name }
func (i userItem) Title() string       { return i.user.Name }
func (i userItem) Description() string {
	return fmt.Sprintf("%s • age %d", i.user.Email, i.user.Age)
}
