// Package output provides structured output handling for the tiller CLI.
//
// Every command writes through a Printer, which renders either styled text
// (lipgloss, disabled when not writing to a terminal) or JSON when the
// --json flag is set:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, isTTY)
//	printer.Success(map[string]any{"message": "07.md published", "file": "07.md"})
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: empty note, missing config, notebook full
//	output.ExitSystemError // 2: filesystem or git failure
//	output.ExitConflict    // 3: note file already exists
//
// Errors that reach main are *ExitError values; GetExitCode maps them to the
// process exit status. Domain sentinels (note.ErrEmptyInput and friends) are
// carried as the Cause so callers can still match them with errors.Is.
package output
