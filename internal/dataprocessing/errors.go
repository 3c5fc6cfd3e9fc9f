package dataprocessing

import (
	"fmt"
	"strings"
)

// MalformedFileError reports a file whose bytes could not be decoded into a
// grid at all. Fatal for that file only.
type MalformedFileError struct {
	File  string
	Cause error
}

// Error implements the error interface
func (e *MalformedFileError) Error() string {
	return fmt.Sprintf("malformed file %q: %v", e.File, e.Cause)
}

// Unwrap returns the underlying decode error
func (e *MalformedFileError) Unwrap() error {
	return e.Cause
}

// HeaderNotFoundError reports a grid in which no recognizable column layout
// was found within the scanned rows. Fatal for that file only.
type HeaderNotFoundError struct {
	File    string
	Missing []string
}

// Error implements the error interface
func (e *HeaderNotFoundError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("no recognizable header in %q", e.File)
	}
	return fmt.Sprintf("no recognizable header in %q: missing %s column(s)",
		e.File, strings.Join(e.Missing, ", "))
}

// NoValidDrawsError reports a batch that produced zero valid draws after
// extraction and merge. Fatal for the whole batch - there is nothing to
// aggregate. It names the expected shape so callers can produce an
// actionable message.
type NoValidDrawsError struct {
	DrawSize     int
	TotalNumbers int
}

// Error implements the error interface
func (e *NoValidDrawsError) Error() string {
	return fmt.Sprintf("no valid draws found: expected rows with %d unique numbers between 1 and %d",
		e.DrawSize, e.TotalNumbers)
}
