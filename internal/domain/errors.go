package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates the input path does not exist or is not a regular file.
var ErrNotFound = errors.New("file not found")

// ErrInvalidDirectory indicates the directory argument does not name an
// existing directory.
var ErrInvalidDirectory = errors.New("not a valid directory")

// UnsupportedFormatError indicates a file extension outside SupportedFormats.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q for %s: supported formats are %s",
		e.Ext, e.Path, strings.Join(SupportedFormats, ", "))
}
