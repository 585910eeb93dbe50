package note

import (
	"strings"
	"time"
)

// Template placeholders substituted by RenderHeader.
const (
	TitleToken = "$TITLE"
	DateToken  = "$DATE"
)

// DateLayout is the timestamp format written into headers.
const DateLayout = "2006-01-02T15:04:05"

// TitleFromFileName strips the .md suffix: "07.md" -> "07".
func TitleFromFileName(fileName string) string {
	return strings.TrimSuffix(fileName, Ext)
}

// RenderHeader fills every $TITLE and $DATE in tmpl.
// Everything else in the template is kept as is.
func RenderHeader(tmpl, fileName string, now time.Time) string {
	return strings.NewReplacer(
		TitleToken, TitleFromFileName(fileName),
		DateToken, now.Format(DateLayout),
	).Replace(tmpl)
}
