package git

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/process"
)

// Client runs git commands inside one repository.
type Client struct {
	dir    string
	runner process.Runner
	logger *slog.Logger
}

// New creates a client for the repository at dir.
// A nil runner uses process.Exec; a nil logger discards.
func New(dir string, runner process.Runner, logger *slog.Logger) *Client {
	if runner == nil {
		runner = process.Exec{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{dir: dir, runner: runner, logger: logger}
}

// Dir returns the repository path the client is rooted at.
func (c *Client) Dir() string {
	return c.dir
}

// Run executes a git command in the repository and returns trimmed stdout.
// Returns an *output.ExitError on failure.
func (c *Client) Run(ctx context.Context, args ...string) (string, error) {
	c.logger.Debug("executing git", "args", args, "dir", c.dir)

	res, err := c.runner.Run(ctx, process.Command{Name: "git", Args: args, Dir: c.dir})
	if err == nil {
		return res.Stdout, nil
	}

	var notFound *process.NotFoundError
	if errors.As(err, &notFound) {
		return "", output.NewSystemErrorWithCause("git not found: ensure git is installed and in PATH", err)
	}

	subcommand := "command"
	if len(args) > 0 {
		subcommand = args[0]
	}
	msg := res.Stderr
	if msg == "" {
		msg = err.Error()
	}
	return "", output.NewSystemErrorWithCause("git "+subcommand+" failed: "+msg, err)
}

// IsRepo reports whether the client directory is inside a git work tree.
func (c *Client) IsRepo(ctx context.Context) bool {
	out, err := c.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Add stages the given paths.
func (c *Client) Add(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	_, err := c.Run(ctx, append([]string{"add"}, paths...)...)
	return err
}

// Commit records the staged changes with message.
func (c *Client) Commit(ctx context.Context, message string) error {
	_, err := c.Run(ctx, "commit", "-m", message)
	return err
}

// Push pushes branch to remote.
func (c *Client) Push(ctx context.Context, remote, branch string) error {
	_, err := c.Run(ctx, "push", remote, branch)
	return err
}
