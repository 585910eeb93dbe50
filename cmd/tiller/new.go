package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/tiller/internal/config"
	"github.com/gorewood/tiller/internal/editor"
	"github.com/gorewood/tiller/internal/git"
	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/pipeline"
	"github.com/gorewood/tiller/internal/publish"
)

// newFlags holds the flags of the root (new note) command.
type newFlags struct {
	message string
	dryRun  bool
	noPush  bool
	setup   bool
}

func addNewFlags(cmd *cobra.Command, flags *newFlags) {
	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Note body; skips the editor")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the note without writing or publishing it")
	cmd.Flags().BoolVar(&flags.noPush, "no-push", false, "Commit the note but do not push")
	cmd.Flags().BoolVar(&flags.setup, "setup", false, "Create default config files (same as 'tiller setup')")
}

// runNew writes and publishes one note.
func runNew(cmd *cobra.Command, env *environment, flags *newFlags) error {
	ctx := cmd.Context()
	printer := newPrinter(cmd)
	logger := newLogger(cmd)

	cfg, err := loadConfig(cmd, printer)
	if err != nil {
		return err
	}
	tmpl, err := config.LoadTemplate(configDir(cmd))
	if err != nil {
		printer.Error(err)
		return err
	}

	client := git.New(cfg.RepoPath, env.runner, logger)
	if !flags.dryRun && !client.IsRepo(ctx) {
		err := output.NewSystemError("not a git repository: " + cfg.RepoPath)
		printer.Error(err)
		return err
	}

	body := flags.message
	if !cmd.Flags().Changed("message") {
		body, err = editor.Capture(ctx, env.runner, cfg.Editor)
		if err != nil {
			printer.Error(err)
			return err
		}
	}
	logger.Debug("note content", "content", body)

	p := pipeline.New(pipeline.Options{
		Folder:   cfg.NotesPath(),
		Template: tmpl,
		Publisher: publish.New(client, publish.Options{
			Remote:   cfg.Remote,
			Branch:   cfg.Branch,
			SkipPush: flags.noPush,
			Logger:   logger,
		}),
		Clock:  env.clock,
		Logger: logger,
		DryRun: flags.dryRun,
	})

	res, err := p.Run(ctx, body)
	if err != nil {
		printer.Error(err)
		return err
	}

	if flags.dryRun {
		return outputDryRun(printer, res)
	}
	return outputPublished(printer, res, cfg, flags.noPush)
}

func outputDryRun(printer *output.Printer, res pipeline.Result) error {
	n := res.Note
	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status":  "dry_run",
			"file":    n.FileName,
			"path":    n.Path,
			"content": n.Content(),
		})
	}

	printer.Box(n.FileName+" (dry run)", n.Content())
	printer.Println(printer.Dim("would write " + n.Path))
	return nil
}

func outputPublished(printer *output.Printer, res pipeline.Result, cfg config.Config, noPush bool) error {
	n := res.Note
	status := "published"
	if noPush {
		status = "committed"
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"status": status,
			"file":   n.FileName,
			"path":   n.Path,
			"stage":  res.Stage,
			"steps":  res.Publish.Steps,
		})
	}

	if noPush {
		return printer.Success(map[string]any{"message": "Committed " + n.FileName + " (not pushed)"})
	}
	return printer.Success(map[string]any{
		"message": "Published " + n.FileName + " to " + cfg.Remote + "/" + cfg.Branch,
	})
}
