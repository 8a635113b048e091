package errs

import (
	"errors"
	"fmt"
)

// Common sentinel errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("data conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyField         = errors.New("field must not be empty")
)

// Provides details at which field unique violation has occurred.
type AlreadyExistsError struct {
	FieldName string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("record with field %q already exists", e.FieldName)
}
