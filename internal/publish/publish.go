// Package publish commits a new note and pushes it to the remote.
package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/gorewood/tiller/internal/git"
	"github.com/gorewood/tiller/internal/output"
)

// Defaults for the push target.
const (
	DefaultRemote = "origin"
	DefaultBranch = "master"
)

// ErrVersionControl marks a failed git step. The publish sequence stops at
// the first failure; earlier steps are not undone.
var ErrVersionControl = errors.New("version control step failed")

// Step names one stage of the publish sequence.
type Step string

// Publish steps, in execution order.
const (
	StepAdd    Step = "add"
	StepCommit Step = "commit"
	StepPush   Step = "push"
)

// Record is the input of one publish call.
type Record struct {
	// FilePath is the note file to stage.
	FilePath string
	// FileName is used to build the commit message.
	FileName string
}

// CommitMessage returns the message recorded for the note.
func (r Record) CommitMessage() string {
	return r.FileName + " created"
}

// Result lists the steps that completed.
type Result struct {
	Steps []Step `json:"steps"`
}

// Options configures a Publisher.
type Options struct {
	Remote   string
	Branch   string
	SkipPush bool
	Logger   *slog.Logger
}

// Publisher stages, commits and pushes notes through a git client.
type Publisher struct {
	git    *git.Client
	remote string
	branch string
	push   bool
	logger *slog.Logger
}

// New creates a Publisher. Empty remote and branch fall back to origin/master.
func New(client *git.Client, opts Options) *Publisher {
	p := &Publisher{
		git:    client,
		remote: opts.Remote,
		branch: opts.Branch,
		push:   !opts.SkipPush,
		logger: opts.Logger,
	}
	if p.remote == "" {
		p.remote = DefaultRemote
	}
	if p.branch == "" {
		p.branch = DefaultBranch
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p
}

// Publish runs git add, commit and push in order inside the repository.
// The first failing step aborts the sequence and is returned wrapped with
// ErrVersionControl; the returned Result still lists the completed steps.
func (p *Publisher) Publish(ctx context.Context, rec Record) (Result, error) {
	var res Result

	steps := []struct {
		step Step
		run  func() error
	}{
		{StepAdd, func() error { return p.git.Add(ctx, rec.FilePath) }},
		{StepCommit, func() error { return p.git.Commit(ctx, rec.CommitMessage()) }},
		{StepPush, func() error { return p.git.Push(ctx, p.remote, p.branch) }},
	}

	for _, s := range steps {
		if s.step == StepPush && !p.push {
			p.logger.Debug("push skipped", "remote", p.remote, "branch", p.branch)
			break
		}
		if err := s.run(); err != nil {
			p.logger.Debug("publish step failed", "step", s.step, "error", err)
			return res, stepError(s.step, rec, err)
		}
		res.Steps = append(res.Steps, s.step)
		p.logger.Debug("publish step done", "step", s.step, "file", rec.FileName)
	}

	return res, nil
}

// stepError keeps the git client's message and adds the sentinel and step.
func stepError(step Step, rec Record, err error) error {
	msg := err.Error()
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		msg = exitErr.Message
	}
	return output.NewSystemErrorWithCause(
		fmt.Sprintf("publishing %s stopped at %s: %s", rec.FileName, step, msg),
		fmt.Errorf("%w: %w", ErrVersionControl, err),
	)
}
