// Package pipeline turns editor text into a published note.
//
// A run moves through fixed stages:
//
//	start → content_obtained → sequence_computed → header_rendered →
//	file_written → published → done
//
// The first failing stage ends the run; nothing is retried and nothing
// already written or committed is undone.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/gorewood/tiller/internal/note"
	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/publish"
)

// Publisher publishes a written note. *publish.Publisher implements it.
type Publisher interface {
	Publish(ctx context.Context, rec publish.Record) (publish.Result, error)
}

// Options holds the collaborators of a Pipeline.
type Options struct {
	// Folder is the directory notes are numbered and written in.
	Folder string
	// Template is the header template with $TITLE and $DATE tokens.
	Template  string
	Publisher Publisher
	// Clock defaults to note.SystemClock.
	Clock  note.Clock
	Logger *slog.Logger
	// DryRun stops after the header is rendered.
	DryRun bool
}

// Pipeline creates one note per Run.
type Pipeline struct {
	opts Options
}

// Result describes how far a run got.
type Result struct {
	Note    *note.Note     `json:"note,omitempty"`
	Stage   Stage          `json:"stage"`
	Publish publish.Result `json:"publish"`
}

// New creates a Pipeline.
func New(opts Options) *Pipeline {
	if opts.Clock == nil {
		opts.Clock = note.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{opts: opts}
}

// Run creates a note from body. On error the returned Result reports the
// last stage that completed.
func (p *Pipeline) Run(ctx context.Context, body string) (Result, error) {
	res := Result{Stage: StageStart}
	log := p.opts.Logger

	if len(body) == 0 {
		return res, output.NewUserErrorWithCause("nothing to save: the note is empty", note.ErrEmptyInput)
	}
	p.advance(&res, StageContentObtained, "bytes", len(body))

	fileName, err := note.NextFileName(p.opts.Folder)
	if err != nil {
		return res, err
	}
	n := &note.Note{
		FileName: fileName,
		Path:     filepath.Join(p.opts.Folder, fileName),
		Body:     body,
	}
	n.Number, _ = note.ParseNumber(fileName)
	res.Note = n
	p.advance(&res, StageSequenceComputed, "file", fileName)

	n.Header = note.RenderHeader(p.opts.Template, fileName, p.opts.Clock())
	p.advance(&res, StageHeaderRendered, "title", n.Title())

	if p.opts.DryRun {
		log.Debug("dry run: skipping write and publish", "path", n.Path)
		return res, nil
	}

	if err := note.Write(n.Path, n.Header, n.Body); err != nil {
		return res, err
	}
	p.advance(&res, StageFileWritten, "path", n.Path)

	pub, err := p.opts.Publisher.Publish(ctx, publish.Record{FilePath: n.Path, FileName: n.FileName})
	res.Publish = pub
	if err != nil {
		return res, err
	}
	p.advance(&res, StagePublished, "steps", len(pub.Steps))

	p.advance(&res, StageDone)
	return res, nil
}

func (p *Pipeline) advance(res *Result, stage Stage, attrs ...any) {
	res.Stage = stage
	p.opts.Logger.Debug("pipeline stage", append([]any{"stage", stage.String()}, attrs...)...)
}
