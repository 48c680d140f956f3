package errs

import "strings"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// UnauthorizedError means there is no valid session for the caller.
type UnauthorizedError struct {
	ErrorMessage
}

// ValidationError reports a field-level rejection. The whole record is
// refused; nothing is partially applied.
type ValidationError struct {
	ErrorMessage
}

// NotFoundError means the targeted id does not exist or is not owned by
// the caller. The two cases are indistinguishable on purpose.
type NotFoundError struct {
	ErrorMessage
}

// DatabaseError wraps a failed store operation.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

// PartialDeletionError reports an aborted multi-step account deletion.
// Steps already completed are gone; there is no rollback.
type PartialDeletionError struct {
	ErrorMessage
	FailedStep string
	Completed  []string
	Err        error
}

func (e *PartialDeletionError) Unwrap() error { return e.Err }

func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation, message string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: message},
		Operation:    operation,
		Err:          err,
	}
}

func NewPartialDeletionError(failedStep string, completed []string, err error) *PartialDeletionError {
	msg := "account deletion failed while deleting " + failedStep
	if len(completed) > 0 {
		msg += "; already deleted: " + strings.Join(completed, ", ")
	}
	return &PartialDeletionError{
		ErrorMessage: ErrorMessage{Message: msg},
		FailedStep:   failedStep,
		Completed:    completed,
		Err:          err,
	}
}
