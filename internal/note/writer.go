package note

import (
	"errors"
	"os"

	"github.com/gorewood/tiller/internal/output"
)

// separator sits between the rendered header and the body.
const separator = " \n "

// Compose joins header and body the way they are stored on disk.
func Compose(header, body string) string {
	return header + separator + body
}

// Write creates the note file at path and stores header and body.
// An existing file is never overwritten: it fails with ErrAlreadyExists.
// A failed write is not retried and may leave a partial file behind.
func Write(path, header, body string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return output.NewConflictErrorWithCause("note already exists: "+path, ErrAlreadyExists)
		}
		return output.NewSystemErrorWithCause("failed to create note: "+path, err)
	}

	if _, err := file.WriteString(Compose(header, body)); err != nil {
		_ = file.Close()
		return output.NewSystemErrorWithCause("failed to write note: "+path, err)
	}
	if err := file.Close(); err != nil {
		return output.NewSystemErrorWithCause("failed to write note: "+path, err)
	}
	return nil
}
