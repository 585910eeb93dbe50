// Package editor collects note text by opening the user's editor on a scratch file.
package editor

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/process"
)

// scratchPattern names the temporary file handed to the editor.
const scratchPattern = "tiller-*.md"

// Capture opens editor on an empty scratch file, waits for it to exit and
// returns what was saved. The scratch file is removed afterwards.
//
// editor may carry arguments ("code --wait"); they are split on whitespace
// and the scratch path is appended last. There is no timeout: a hung editor
// blocks until ctx is cancelled.
func Capture(ctx context.Context, runner process.Runner, editor string) (string, error) {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return "", output.NewUserError("no editor configured: set \"editor\" in config.json or $EDITOR")
	}

	scratch, err := os.CreateTemp("", scratchPattern)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to create scratch file", err)
	}
	path := scratch.Name()
	defer os.Remove(path) //nolint:errcheck // best-effort cleanup of temp file
	if err := scratch.Close(); err != nil {
		return "", output.NewSystemErrorWithCause("failed to create scratch file", err)
	}

	cmd := process.Command{
		Name:        fields[0],
		Args:        append(fields[1:], path),
		Interactive: true,
	}
	if _, err := runner.Run(ctx, cmd); err != nil {
		var notFound *process.NotFoundError
		if errors.As(err, &notFound) {
			return "", output.NewSystemErrorWithCause("failed to open editor "+fields[0], err)
		}
		return "", output.NewSystemErrorWithCause("editor exited with an error: "+err.Error(), err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", output.NewSystemErrorWithCause("failed to read scratch file", err)
	}
	return string(data), nil
}
