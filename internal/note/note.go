// Package note numbers, renders and writes today-I-learned notes.
//
// Notes live as flat files named NN.md inside the notes folder. The package
// is pure filesystem and string work; publishing is handled elsewhere.
package note

import (
	"errors"
	"time"
)

// Ext is the extension of every note file.
const Ext = ".md"

// MaxNumber is the largest sequence number a note can carry.
// File names are two-digit zero-padded.
const MaxNumber = 99

var (
	// ErrEmptyInput is returned when the editor produced no content.
	ErrEmptyInput = errors.New("note body is empty")

	// ErrCapacityExceeded is returned when the next sequence number would not fit in two digits.
	ErrCapacityExceeded = errors.New("note sequence exhausted")

	// ErrAlreadyExists is returned when the target note file already exists.
	ErrAlreadyExists = errors.New("note file already exists")
)

// Note is one numbered markdown file.
type Note struct {
	Number   int    `json:"number"`
	FileName string `json:"file"`
	Path     string `json:"path"`
	Header   string `json:"header"`
	Body     string `json:"body"`
}

// Title returns the display title derived from the file name.
func (n *Note) Title() string {
	return TitleFromFileName(n.FileName)
}

// Content returns the exact bytes Write stores for the note.
func (n *Note) Content() string {
	return Compose(n.Header, n.Body)
}

// Clock returns the current time. Tests inject a fixed clock.
type Clock func() time.Time

// SystemClock is the local wall clock.
func SystemClock() time.Time {
	return time.Now()
}
