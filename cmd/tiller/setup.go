package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gorewood/tiller/internal/config"
	"github.com/gorewood/tiller/internal/publish"
)

// setupFlags holds the values written into config.json.
type setupFlags struct {
	editor string
	repo   string
	folder string
	remote string
	branch string
	force  bool
}

// defaultSetupFlags is what `tiller --setup` and a bare `tiller setup` use.
func defaultSetupFlags() *setupFlags {
	flags := &setupFlags{
		editor: os.Getenv("EDITOR"),
		folder: "notes",
		remote: publish.DefaultRemote,
		branch: publish.DefaultBranch,
	}
	if flags.editor == "" {
		flags.editor = "vi"
	}
	if cwd, err := os.Getwd(); err == nil {
		flags.repo = cwd
	}
	return flags
}

// newSetupCmd creates the setup command.
func newSetupCmd() *cobra.Command {
	flags := defaultSetupFlags()

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create config.json and prepend.md",
		Long: `Create the default configuration files in the tiller config directory.

Existing files are left alone unless --force is given.

Examples:
  tiller setup                              # current directory as the repo
  tiller setup --repo ~/til --folder notes  # explicit notebook location
  tiller setup --editor "code --wait"       # GUI editor that blocks
  tiller setup --force                      # rewrite both files`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSetup(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.editor, "editor", flags.editor, "Editor command")
	cmd.Flags().StringVar(&flags.repo, "repo", flags.repo, "Path of the git repository holding the notes")
	cmd.Flags().StringVar(&flags.folder, "folder", flags.folder, "Notes folder inside the repository")
	cmd.Flags().StringVar(&flags.remote, "remote", flags.remote, "Remote to push to")
	cmd.Flags().StringVar(&flags.branch, "branch", flags.branch, "Branch to push")
	cmd.Flags().BoolVar(&flags.force, "force", false, "Overwrite existing files")

	return cmd
}

// runSetup writes the default files.
func runSetup(cmd *cobra.Command, flags *setupFlags) error {
	printer := newPrinter(cmd)

	cfg := config.Config{
		Editor:      flags.editor,
		NotesFolder: flags.folder,
		RepoPath:    config.ExpandHome(flags.repo),
		Remote:      flags.remote,
		Branch:      flags.branch,
	}
	if err := cfg.Validate(); err != nil {
		printer.Error(err)
		return err
	}

	results, err := config.Bootstrap(configDir(cmd), cfg, flags.force)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{"status": "ok", "files": results})
	}
	for _, r := range results {
		printer.KeyValue(r.Status, r.Path)
	}
	return nil
}
