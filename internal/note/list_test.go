package note

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantDate  string
	}{
		{
			name:      "frontmatter and heading",
			content:   "---\ntitle: 07\ndate: 2024-01-01T00:00:00\n---\n \n # Go slices share arrays\n\nappend may reallocate.",
			wantTitle: "Go slices share arrays",
			wantDate:  "2024-01-01T00:00:00",
		},
		{
			name:      "frontmatter without heading",
			content:   "---\ntitle: Closures\ndate: 2024-02-02T10:00:00\n---\n \n loop variables are per-iteration now",
			wantTitle: "Closures",
			wantDate:  "2024-02-02T10:00:00",
		},
		{
			name:      "plain header",
			content:   "TIL 07 \n # `errors.Join` exists",
			wantTitle: "errors.Join exists",
		},
		{
			name:      "second-level heading only",
			content:   "## Not a title\ntext",
			wantTitle: "07",
		},
		{
			name:      "unterminated frontmatter",
			content:   "---\ntitle: broken\n \n body",
			wantTitle: "07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(7, "07.md", []byte(tt.content))
			assert.Equal(t, 7, s.Number)
			assert.Equal(t, "07.md", s.FileName)
			assert.Equal(t, tt.wantTitle, s.Title)
			assert.Equal(t, tt.wantDate, s.Date)
		})
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"10.md":    "# Ten",
		"02.md":    "# Two",
		"notes.md": "# Not numbered",
		"03.txt":   "# Wrong extension",
		"01.md":    "# One",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	got, err := List(dir)
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, s := range got {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{"One", "Two", "Ten"}, titles)
}

func TestList_MissingFolder(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}

func TestSearch(t *testing.T) {
	summaries := []Summary{
		{Number: 1, FileName: "01.md", Title: "Go slices share arrays"},
		{Number: 2, FileName: "02.md", Title: "Context cancellation"},
		{Number: 3, FileName: "03.md", Title: "Tricks with slices"},
	}

	got := Search(summaries, "slice")
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Contains(t, []string{"01.md", "03.md"}, s.FileName)
	}

	assert.Empty(t, Search(summaries, "kubernetes"))
	assert.Empty(t, Search(summaries, ""))
}
