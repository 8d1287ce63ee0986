package apperr

import "fmt"

// ValidationError marks input that was read successfully but cannot be used:
// an unrecognized file name, a missing column, a non-positive word count.
// Callers skip the offending input and keep going.
type ValidationError struct {
	Source  string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	msg := e.Message
	if e.Source != "" {
		msg = e.Source + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// WithSource returns a copy of e attributed to source (usually a file name).
func (e *ValidationError) WithSource(source string) *ValidationError {
	c := *e
	c.Source = source
	return &c
}
