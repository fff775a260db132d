// Package cmd implements the scaffold command line.
package cmd

import (
	"errors"

	"github.com/cpcf/scaffold/engine"
)

const (
	// ExitSuccess also covers runs where some templates were skipped.
	ExitSuccess = 0

	// ExitGeneralError reports a run that could not start: missing entity
	// name, missing templates directory or no templates.
	ExitGeneralError = 1

	// ExitUsageError reports invalid arguments or configuration.
	ExitUsageError = 2

	// ExitTemplateError reports per-template failures under --strict.
	ExitTemplateError = 3
)

// ExitError carries the process exit code for err.
type ExitError struct {
	Err  error
	Code int
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError maps an error returned by the root command to an exit code.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var multiErr *engine.MultiError
	var genErr *engine.GenerationError
	switch {
	case errors.As(err, &multiErr), errors.As(err, &genErr):
		return ExitTemplateError
	default:
		return ExitGeneralError
	}
}
