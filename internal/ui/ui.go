package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nmakharadze/roster/internal/models"
	"github.com/nmakharadze/roster/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	UserListView ViewState = iota
	AddUserView
	ReportView
)

// field indices for the add-user form
const (
	fieldName = iota
	fieldEmail
	fieldAge
	fieldCount
)

// Model represents the TUI application state.
type Model struct {
	view     ViewState
	engine   *tasks.UserEngine
	width    int
	height   int
	userList list.Model
	users    []models.User
	inputs   []textinput.Model
	focused  int
	status   string
	report   *tasks.Report
	err      error
	help     help.Model
	keys     keyMap
}

type usersLoadedMsg struct {
	users []models.User
	err   error
}

type userAddedMsg struct {
	user models.User
	err  error
}

type reportExportedMsg struct {
	report *tasks.Report
	err    error
}

// NewModel creates a new TUI model over the given engine.
func NewModel(engine *tasks.UserEngine) *Model {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 64
	}
	inputs[fieldName].Placeholder = "Name"
	inputs[fieldEmail].Placeholder = "Email"
	inputs[fieldAge].Placeholder = "Age"
	inputs[fieldName].Focus()

	return &Model{
		view:   UserListView,
		engine: engine,
		inputs: inputs,
		help:   help.New(),
		keys:   newKeyMap(),
	}
}

// Init initializes the TUI by loading the stored users.
func (m *Model) Init() tea.Cmd {
	return m.loadUsers()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.userList.Width() == 0 {
			m.userList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case UserListView:
			return m.handleListKeys(msg)
		case AddUserView:
			return m.handleAddKeys(msg)
		case ReportView:
			return m.handleReportKeys(msg)
		}

	case usersLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.users = msg.users
		items := make([]list.Item, len(msg.users))
		for i, user := range msg.users {
			items[i] = userItem{user: user}
		}
		m.userList = list.New(items, list.NewDefaultDelegate(), 0, 0)
		m.userList.Title = fmt.Sprintf("Users (%d)", len(msg.users))
		m.userList.SetSize(m.width-4, m.height-8)
		return m, nil

	case userAddedMsg:
		if msg.err != nil {
			// Validation failures keep the form open with the reason shown.
			m.status = styles.err.Render(fmt.Sprintf("Rejected: %v", msg.err))
			return m, nil
		}
		m.status = styles.ok.Render(fmt.Sprintf("Added %s", msg.user.Name))
		m.resetForm()
		m.view = UserListView
		return m, m.loadUsers()

	case reportExportedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.report = msg.report
		m.view = ReportView
		return m, nil
	}

	if m.view == UserListView {
		var cmd tea.Cmd
		m.userList, cmd = m.userList.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	switch m.view {
	case UserListView:
		return m.renderUserList()
	case AddUserView:
		return m.renderAddForm()
	case ReportView:
		return m.renderReport()
	default:
		return ""
	}
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "a":
		m.status = ""
		m.view = AddUserView
		return m, textinput.Blink
	case "x":
		return m, m.exportReport()
	}

	var cmd tea.Cmd
	m.userList, cmd = m.userList.Update(msg)
	return m, cmd
}

func (m *Model) handleAddKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.resetForm()
		m.view = UserListView
		return m, nil
	case "tab", "shift+tab", "up", "down":
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.focused--
		} else {
			m.focused++
		}
		if m.focused < 0 {
			m.focused = fieldCount - 1
		}
		if m.focused >= fieldCount {
			m.focused = 0
		}
		for i := range m.inputs {
			if i == m.focused {
				m.inputs[i].Focus()
			} else {
				m.inputs[i].Blur()
			}
		}
		return m, textinput.Blink
	case "enter":
		if m.focused < fieldCount-1 {
			return m.handleAddKeys(tea.KeyMsg{Type: tea.KeyTab})
		}
		return m, m.submitUser()
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) handleReportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.report = nil
		m.view = UserListView
		return m, nil
	}
	return m, nil
}

func (m *Model) resetForm() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focused = fieldName
	m.inputs[fieldName].Focus()
}

func (m *Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.engine.ListUsers()
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m *Model) submitUser() tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	rawAge := strings.TrimSpace(m.inputs[fieldAge].Value())

	return func() tea.Msg {
		age, err := strconv.Atoi(rawAge)
		if err != nil {
			return userAddedMsg{err: fmt.Errorf("age %q is not an integer", rawAge)}
		}

		user, err := m.engine.AddUser(name, email, age)
		return userAddedMsg{user: user, err: err}
	}
}

func (m *Model) exportReport() tea.Cmd {
	return func() tea.Msg {
		report, err := m.engine.ExportReport("")
		return reportExportedMsg{report: report, err: err}
	}
}

func (m *Model) renderUserList() string {
	var status string
	if m.status != "" {
		status = "\n" + m.status
	}
	helpKeys := []key.Binding{m.keys.add, m.keys.report, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s%s\n\n%s", m.userList.View(), status, helpView)
}

func (m *Model) renderAddForm() string {
	title := styles.title.Render("Add User")

	var fields []string
	for i := range m.inputs {
		fields = append(fields, m.inputs[i].View())
	}

	var status string
	if m.status != "" {
		status = "\n" + m.status
	}

	helpKeys := []key.Binding{m.keys.submit, m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s%s\n\n%s", title, strings.Join(fields, "\n"), status, helpView)
}

func (m *Model) renderReport() string {
	title := styles.title.Render("Report")

	body, err := m.report.JSON()
	if err != nil {
		body = []byte(fmt.Sprintf("failed to render report: %v", err))
	}

	summary := styles.ok.Render(fmt.Sprintf("✓ Report written (%d users)", m.report.TotalUsers))

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", title, summary, body, helpView)
}
