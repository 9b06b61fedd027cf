// Package dataset loads the historical career/internship dataset from a CSV
// training table or a JSON internship catalog.
package dataset

import "fmt"

// LoadError represents an error during dataset file I/O, parsing or shape
// checking. A LoadError at startup is terminal for the process.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dataset load error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("dataset load error: %s: %s", e.Path, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

func loadErrorf(path, format string, args ...any) *LoadError {
	return &LoadError{Path: path, Message: fmt.Sprintf(format, args...)}
}
