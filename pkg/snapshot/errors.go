package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is returned when the root path is missing or is not a directory.
	ErrInvalidRoot = errors.New("not a valid directory")

	// ErrInvalidEncoding is the cause of a FileReadError for content that is not UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")

	// ErrFileTooLarge is the cause of a FileReadError for files over the size limit.
	ErrFileTooLarge = errors.New("file exceeds size limit")
)

// FileReadError records a file whose content could not be embedded.
// It never aborts a run; the document shows its message in place of the content.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("error reading file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

func invalidRootError(root string) error {
	return fmt.Errorf("the provided path '%s' is %w", root, ErrInvalidRoot)
}
