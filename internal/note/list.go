package note

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/tiller/internal/output"
)

// Summary describes a stored note for listing and search.
type Summary struct {
	Number   int    `json:"number"`
	FileName string `json:"file"`
	Title    string `json:"title"`
	Date     string `json:"date,omitempty"`
}

// frontmatter holds the header fields tiller understands.
type frontmatter struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
}

// List returns a summary of every numbered note in folder, ordered by number.
func List(folder string) ([]Summary, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to read notes folder: "+folder, err)
	}

	var summaries []Summary
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		n, ok := ParseNumber(entry.Name())
		if !ok {
			continue
		}

		path := filepath.Join(folder, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("failed to read note: "+path, err)
		}
		summaries = append(summaries, Summarize(n, entry.Name(), data))
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Number < summaries[j].Number
	})
	return summaries, nil
}

// Summarize builds a Summary from a note file's content.
// The title is the first level-1 heading of the body, falling back to the
// frontmatter title and then to the file stem.
func Summarize(number int, fileName string, content []byte) Summary {
	meta, body := splitFrontmatter(content)

	title := firstHeading(body)
	if title == "" {
		title = meta.Title
	}
	if title == "" {
		title = TitleFromFileName(fileName)
	}

	return Summary{
		Number:   number,
		FileName: fileName,
		Title:    title,
		Date:     meta.Date,
	}
}

// splitFrontmatter separates a leading --- delimited YAML block from the body.
// Content without a well-formed block is returned whole as the body.
func splitFrontmatter(content []byte) (frontmatter, []byte) {
	var meta frontmatter

	lines := bytes.Split(content, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return meta, content
	}

	end := 0
	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			end = i
			break
		}
	}
	if end == 0 {
		return meta, content
	}

	if err := yaml.Unmarshal(bytes.Join(lines[1:end], []byte("\n")), &meta); err != nil {
		return frontmatter{}, content
	}
	return meta, bytes.Join(lines[end+1:], []byte("\n"))
}

// firstHeading returns the text of the first level-1 heading, or "".
func firstHeading(markdown []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(markdown))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = strings.TrimSpace(headingText(heading, markdown))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

// headingText concatenates the text segments under a heading.
func headingText(heading *ast.Heading, source []byte) string {
	var sb strings.Builder
	for child := heading.FirstChild(); child != nil; child = child.NextSibling() {
		_ = ast.Walk(child, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if entering {
				if t, ok := n.(*ast.Text); ok {
					sb.Write(t.Segment.Value(source))
					if t.SoftLineBreak() {
						sb.WriteByte(' ')
					}
				}
			}
			return ast.WalkContinue, nil
		})
	}
	return sb.String()
}
