// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a three-view workflow for managing the roster:
//  1. [UserListView] : Browse the stored users
//  2. [AddUserView] : Add a user via a small form, with rejected input shown inline
//  3. [ReportView] : Export the report and display its content
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Engine calls run inside [tea.Cmd] closures so rendering never blocks on file I/O.
//
// Keyboard navigation uses vim-style bindings (j/k, a, x, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
