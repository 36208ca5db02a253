// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, usersCommand, reportCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// usersCommand handles user record operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "users",
		Aliases: []string{"u"},
		Usage:   "Add and list user records",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Validate and store a user record",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Aliases:  []string{"n"},
						Usage:    "User name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "User email",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "age",
						Aliases:  []string{"a"},
						Usage:    "User age",
						Required: true,
					},
				},
				Action: r.UsersAdd,
			},
			{
				Name:  "list",
				Usage: "List all stored user records in insertion order",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "csv",
						Usage: "Output CSV rows (same layout as the file store)",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.UsersList,
			},
		},
	}
}

// reportCommand handles report generation
func reportCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Summarize stored user records",
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "Write the report file and print its content",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Report file path (defaults to the configured path)",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "Skip printing the report content",
					},
				},
				Action: r.ReportExport,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the sqlite backend.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize the sqlite database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive roster management.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for browsing and adding users",
		Action:  r.TUI,
	}
}
