package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors abort a run before any template is processed.
var (
	ErrEntityNameRequired   = errors.New("entity name is required")
	ErrTemplatesDirNotFound = errors.New("templates directory not found")
	ErrNoTemplates          = errors.New("no templates found")
	ErrUnsafeOutputPath     = errors.New("output path escapes the output root")
)

// GenerationError is a failure confined to one template.
type GenerationError struct {
	Path    string
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

type MultiError struct {
	Errors []*GenerationError
}

func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}

	var msgs []string
	for _, err := range m.Errors {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("multiple errors:\n%s", strings.Join(msgs, "\n"))
}

func (m *MultiError) Unwrap() []error {
	errs := make([]error, len(m.Errors))
	for i, err := range m.Errors {
		errs[i] = err
	}
	return errs
}

func (m *MultiError) Add(path, message string, err error) *GenerationError {
	genErr := &GenerationError{
		Path:    path,
		Message: message,
		Err:     err,
	}
	m.Errors = append(m.Errors, genErr)
	return genErr
}

func (m *MultiError) HasErrors() bool {
	return len(m.Errors) > 0
}
