package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repositories when the referenced entity does not
// exist. Repositories map sql.ErrNoRows to it so callers never see driver
// errors.
var ErrNotFound = errors.New("not found")

// ValidationError reports rejected user input. Validation happens before any
// data-access call, so a ValidationError guarantees nothing was persisted.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// OperationError wraps a create/update/delete that failed at the data layer,
// naming the workflow step that issued it. The system state may already be
// partially mutated when one of these is reported.
type OperationError struct {
	Step string
	Err  error
}

func (e *OperationError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }

func (e *OperationError) Unwrap() error { return e.Err }
