package model

import (
	"fmt"
)

// MissingFileError is returned when an input table does not exist.
type MissingFileError struct {
	Path string
	Err  error
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("input table not found: %s", e.Path)
}

func (e *MissingFileError) Unwrap() error { return e.Err }

// MalformedDataError is returned when a table is missing a required column,
// holds a value of the wrong type, or breaks a uniqueness invariant.
// Line is 1-based and counts the header; zero means the whole file.
type MalformedDataError struct {
	Path   string
	Table  string // Table label, used when no file is involved
	Line   int
	Column string
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	msg := "malformed table " + e.Path
	if e.Path == "" {
		msg = "malformed " + e.Table
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" line %d", e.Line)
	}
	if e.Column != "" {
		msg += fmt.Sprintf(" column %q", e.Column)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedDataError) Unwrap() error { return e.Err }

// ModelNotFoundError is returned when a model filter matches no row.
type ModelNotFoundError struct {
	Model string
	Table string
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %q not found in %s", e.Model, e.Table)
}

// ExternalJobError records a batch script that exited non-zero or could not
// be started. It is collected, never returned as fatal.
type ExternalJobError struct {
	Script     string
	ExitCode   int
	Diagnostic string
	Err        error
}

func (e *ExternalJobError) Error() string {
	if e.Diagnostic != "" {
		return fmt.Sprintf("%s failed (exit %d): %s", e.Script, e.ExitCode, e.Diagnostic)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Script, e.Err)
	}
	return fmt.Sprintf("%s failed (exit %d)", e.Script, e.ExitCode)
}

func (e *ExternalJobError) Unwrap() error { return e.Err }
