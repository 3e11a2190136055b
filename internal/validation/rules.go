// Package validation provides helpers around jellydator/validation for the
// application's input checks.
package validation

import (
	apperrors "github.com/allisson/lifetrack/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput so
// handlers map them to 422 without inspecting the validation library's types.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}
