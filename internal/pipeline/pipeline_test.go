package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/tiller/internal/git"
	"github.com/gorewood/tiller/internal/note"
	"github.com/gorewood/tiller/internal/output"
	"github.com/gorewood/tiller/internal/process/processtest"
	"github.com/gorewood/tiller/internal/publish"
)

var fixedClock = func() time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
}

// fixture is a repo directory with a notes folder and a git fake behind a real Publisher.
type fixture struct {
	repo   string
	folder string
	git    *processtest.Fake
}

func newFixture(t *testing.T, existing ...string) *fixture {
	t.Helper()
	repo := t.TempDir()
	folder := filepath.Join(repo, "notes")
	require.NoError(t, os.Mkdir(folder, 0o755))
	for _, name := range existing {
		require.NoError(t, os.WriteFile(filepath.Join(folder, name), []byte("old"), 0o600))
	}
	return &fixture{repo: repo, folder: folder, git: &processtest.Fake{}}
}

func (f *fixture) pipeline(opts Options) *Pipeline {
	opts.Folder = f.folder
	opts.Clock = fixedClock
	if opts.Template == "" {
		opts.Template = "Title: $TITLE Date: $DATE"
	}
	if opts.Publisher == nil {
		opts.Publisher = publish.New(git.New(f.repo, f.git, nil), publish.Options{})
	}
	return New(opts)
}

func (f *fixture) files(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(f.folder)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestRun_CreatesAndPublishesNote(t *testing.T) {
	f := newFixture(t, "01.md", "02.md", "05.md")

	res, err := f.pipeline(Options{}).Run(context.Background(), "# Maps are references\n")
	require.NoError(t, err)

	assert.Equal(t, StageDone, res.Stage)
	require.NotNil(t, res.Note)
	assert.Equal(t, 6, res.Note.Number)
	assert.Equal(t, "06.md", res.Note.FileName)

	path := filepath.Join(f.folder, "06.md")
	assert.Equal(t, path, res.Note.Path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title: 06 Date: 2024-01-01T00:00:00 \n # Maps are references\n", string(data))

	assert.Equal(t, [][]string{
		{"git", "add", path},
		{"git", "commit", "-m", "06.md created"},
		{"git", "push", "origin", "master"},
	}, f.git.Argv())
	assert.Equal(t, []publish.Step{publish.StepAdd, publish.StepCommit, publish.StepPush}, res.Publish.Steps)
}

func TestRun_EmptyBody(t *testing.T) {
	f := newFixture(t, "01.md")

	res, err := f.pipeline(Options{}).Run(context.Background(), "")
	require.Error(t, err)

	assert.ErrorIs(t, err, note.ErrEmptyInput)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.Equal(t, StageStart, res.Stage)
	assert.Nil(t, res.Note)
	assert.Equal(t, []string{"01.md"}, f.files(t), "nothing may be written")
	assert.Empty(t, f.git.Calls, "git must not be invoked")
}

func TestRun_WhitespaceBodyIsContent(t *testing.T) {
	f := newFixture(t)

	res, err := f.pipeline(Options{}).Run(context.Background(), "\n")
	require.NoError(t, err)
	assert.Equal(t, "01.md", res.Note.FileName)
}

func TestRun_DryRun(t *testing.T) {
	f := newFixture(t, "03.md")

	res, err := f.pipeline(Options{DryRun: true}).Run(context.Background(), "body")
	require.NoError(t, err)

	assert.Equal(t, StageHeaderRendered, res.Stage)
	assert.Equal(t, "04.md", res.Note.FileName)
	assert.Equal(t, "Title: 04 Date: 2024-01-01T00:00:00", res.Note.Header)
	assert.Equal(t, "Title: 04 Date: 2024-01-01T00:00:00 \n body", res.Note.Content())
	assert.Equal(t, []string{"03.md"}, f.files(t))
	assert.Empty(t, f.git.Calls)
}

func TestRun_UnreadableFolder(t *testing.T) {
	f := newFixture(t)
	p := f.pipeline(Options{})
	p.opts.Folder = filepath.Join(f.repo, "missing")

	res, err := p.Run(context.Background(), "body")
	require.Error(t, err)
	assert.Equal(t, output.ExitSystemError, output.GetExitCode(err))
	assert.Equal(t, StageContentObtained, res.Stage)
	assert.Empty(t, f.git.Calls)
}

func TestRun_CapacityExceeded(t *testing.T) {
	f := newFixture(t, "99.md")

	res, err := f.pipeline(Options{}).Run(context.Background(), "body")
	require.Error(t, err)
	assert.ErrorIs(t, err, note.ErrCapacityExceeded)
	assert.Equal(t, StageContentObtained, res.Stage)
	assert.Equal(t, []string{"99.md"}, f.files(t))
	assert.Empty(t, f.git.Calls)
}

func TestRun_PublishFailureKeepsFile(t *testing.T) {
	f := newFixture(t)
	f.git.Handle = processtest.FailOn("commit", "nothing added to commit")

	res, err := f.pipeline(Options{}).Run(context.Background(), "body")
	require.Error(t, err)

	assert.ErrorIs(t, err, publish.ErrVersionControl)
	assert.Equal(t, StageFileWritten, res.Stage)
	assert.Equal(t, []publish.Step{publish.StepAdd}, res.Publish.Steps)
	assert.Equal(t, []string{"01.md"}, f.files(t), "written note is not rolled back")
	assert.Len(t, f.git.Calls, 2, "push must not run after a failed commit")
}

// recordingPublisher captures the record it receives.
type recordingPublisher struct {
	got publish.Record
}

func (r *recordingPublisher) Publish(_ context.Context, rec publish.Record) (publish.Result, error) {
	r.got = rec
	return publish.Result{Steps: []publish.Step{publish.StepAdd}}, nil
}

func TestRun_PublishRecord(t *testing.T) {
	f := newFixture(t, "09.md")
	pub := &recordingPublisher{}

	_, err := f.pipeline(Options{Publisher: pub}).Run(context.Background(), "body")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.folder, "10.md"), pub.got.FilePath)
	assert.Equal(t, "10.md", pub.got.FileName)
	assert.Equal(t, "10.md created", pub.got.CommitMessage())
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "content_obtained", StageContentObtained.String())
	assert.Equal(t, "done", StageDone.String())
	assert.Equal(t, "unknown", Stage(42).String())
}
