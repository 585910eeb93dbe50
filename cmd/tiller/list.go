package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/tiller/internal/note"
	"github.com/gorewood/tiller/internal/output"
)

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List notes in the notes folder",
		Long: `List every numbered note with its title and date.

The title is the first "# heading" of the note, falling back to the
frontmatter title and then the file name.

Examples:
  tiller list
  tiller list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			summaries, err := loadSummaries(cmd, printer)
			if err != nil {
				return err
			}
			return outputSummaries(printer, summaries, "no notes yet")
		},
	}
}

// newSearchCmd creates the search command.
func newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-find notes by title",
		Long: `Fuzzy-find notes by title, best match first.

Examples:
  tiller search slices
  tiller search "ctx cancel"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			printer := newPrinter(cmd)
			summaries, err := loadSummaries(cmd, printer)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			return outputSummaries(printer, note.Search(summaries, query), "no notes match "+query)
		},
	}
}

// newNextCmd creates the next command.
func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the file name the next note will get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := newPrinter(cmd)
			cfg, err := loadConfig(cmd, printer)
			if err != nil {
				return err
			}

			name, err := note.NextFileName(cfg.NotesPath())
			if err != nil {
				printer.Error(err)
				return err
			}

			if printer.IsJSON() {
				return printer.Success(map[string]any{"file": name, "folder": cfg.NotesPath()})
			}
			printer.Println(name)
			return nil
		},
	}
}

func loadSummaries(cmd *cobra.Command, printer *output.Printer) ([]note.Summary, error) {
	cfg, err := loadConfig(cmd, printer)
	if err != nil {
		return nil, err
	}
	summaries, err := note.List(cfg.NotesPath())
	if err != nil {
		printer.Error(err)
		return nil, err
	}
	return summaries, nil
}

func outputSummaries(printer *output.Printer, summaries []note.Summary, empty string) error {
	if printer.IsJSON() {
		if summaries == nil {
			summaries = []note.Summary{}
		}
		return printer.WriteJSON(map[string]any{"count": len(summaries), "notes": summaries})
	}

	if len(summaries) == 0 {
		printer.Println(printer.Dim(empty))
		return nil
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.FileName, s.Title, s.Date})
	}
	printer.Table([]string{"FILE", "TITLE", "DATE"}, rows)
	return nil
}
