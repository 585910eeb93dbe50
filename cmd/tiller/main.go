// Package main provides the entry point for the tiller CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/tiller/internal/config"
	"github.com/gorewood/tiller/internal/note"
	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/process"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// environment holds the process-level collaborators commands depend on.
// Tests replace the runner and clock.
type environment struct {
	runner process.Runner
	clock  note.Clock
}

func defaultEnvironment() *environment {
	return &environment{runner: process.Exec{}, clock: note.SystemClock}
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	os.Exit(run())
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command with real process execution.
func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultEnvironment())
}

// newRootCmdWith creates the root command. Running it without a subcommand
// writes a new note.
func newRootCmdWith(env *environment) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "tiller",
		Short: "Write today-I-learned notes into a git repository",
		Long: `Tiller - a today-I-learned notebook kept in git.

Running tiller opens your editor. When you save and quit, the text becomes
the next numbered note (01.md, 02.md, ...) in your notes folder, gets the
header from prepend.md, and is committed and pushed.

Configuration lives in ~/.config/tiller (override with $TILLER_CONFIG_HOME):
  config.json   {"editor": "vim", "til_folder": "notes", "repo_path": "~/til"}
  prepend.md    header template; $TITLE and $DATE are filled in

Examples:
  tiller                         # open the editor and publish a note
  tiller -m "# errors.Join"      # skip the editor
  tiller --dry-run -m "draft"    # show the note without writing it
  tiller --no-push               # commit locally only
  tiller setup --repo ~/til      # create config.json and prepend.md`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.setup {
				return runSetup(cmd, defaultSetupFlags())
			}
			return runNew(cmd, env, flags)
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", output.ColorAuto, "Color output: auto, always, never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "Path to config.json (default: $TILLER_CONFIG_HOME/config.json)")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode, _ := cmd.Flags().GetString("color")
		if !output.ValidColorMode(mode) {
			return output.NewUserError("invalid --color value " + mode + ": want auto, always or never")
		}
		return nil
	}

	addNewFlags(cmd, flags)

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addGroupedCommand(cmd, newListCmd(), "notes")
	addGroupedCommand(cmd, newSearchCmd(), "notes")
	addGroupedCommand(cmd, newNextCmd(), "notes")
	addGroupedCommand(cmd, newSetupCmd(), "admin")

	return cmd
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "notes", Title: "Note Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor combines the --color flag with TTY detection on stdout.
func useColor(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter builds the printer every command writes through.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// newLogger returns a text logger on stderr; --verbose enables debug records.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// configDir returns the directory holding config.json and prepend.md.
// An explicit --config path selects its parent directory.
func configDir(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return filepath.Dir(path)
	}
	return config.Dir()
}

// configFile returns the config.json path to load.
func configFile(cmd *cobra.Command) string {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path
	}
	return config.File(config.Dir())
}

// loadConfig loads config.json, printing any error.
func loadConfig(cmd *cobra.Command, printer *output.Printer) (config.Config, error) {
	cfg, err := config.Load(configFile(cmd))
	if err != nil {
		printer.Error(err)
		return config.Config{}, err
	}
	return cfg, nil
}
