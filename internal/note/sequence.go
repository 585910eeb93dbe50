package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorewood/tiller/internal/output"
)

// FileName formats a sequence number as a note file name, e.g. 7 -> "07.md".
func FileName(number int) string {
	return fmt.Sprintf("%02d%s", number, Ext)
}

// ParseNumber extracts the sequence number from a note file name.
// Only names with the .md extension and an unsigned 8-bit numeric stem parse.
func ParseNumber(name string) (int, bool) {
	if filepath.Ext(name) != Ext {
		return 0, false
	}
	stem := strings.TrimSuffix(name, Ext)
	n, err := strconv.ParseUint(stem, 10, 8)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// HighestNumber returns the largest note number directly inside folder,
// or 0 when there is none. Directories and non-numeric names are ignored.
func HighestNumber(folder string) (int, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return 0, output.NewSystemErrorWithCause("failed to read notes folder: "+folder, err)
	}

	highest := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if n, ok := ParseNumber(entry.Name()); ok && n > highest {
			highest = n
		}
	}
	return highest, nil
}

// NextFileName returns the file name the next note in folder should use.
// Fails with ErrCapacityExceeded once the two-digit range is used up.
func NextFileName(folder string) (string, error) {
	highest, err := HighestNumber(folder)
	if err != nil {
		return "", err
	}

	next := highest + 1
	if next > MaxNumber {
		return "", output.NewUserErrorWithCause(
			fmt.Sprintf("notes folder is full: next number %d does not fit in two digits", next),
			ErrCapacityExceeded,
		)
	}
	return FileName(next), nil
}
