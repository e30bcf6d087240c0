package repository

import (
	"caseline/internal/shared/errors"
)

// translateWriteError maps a storage error from a write to the application
// taxonomy. Not-null constraint violations become 422 not-null errors; the
// caller handles everything else.
func translateWriteError(err error, subject string) error {
	if errors.IsNotNullConstraintError(err) {
		return errors.NewNotNullViolationError("Invalid data", err.Error())
	}
	return errors.NewInternalError("failed to save "+subject, err.Error())
}
