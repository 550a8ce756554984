package service

import (
	"errors"

	"github.com/forgo/shows/api/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Show Errors =====
var (
	ErrShowNotFound = errors.New("show not found")
	ErrValidation   = errors.New("validation failed")
)

// ValidationError reports the invalid fields of a request.
// Its message is the first field's message.
type ValidationError struct {
	Errors []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return ErrValidation.Error()
	}
	return e.Errors[0].Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
