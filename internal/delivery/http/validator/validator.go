// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "roster/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// requestValidator wraps a shared validator instance for echo.
type requestValidator struct {
	validate *playground.Validate
}

// New constructs the echo validator used by every handler's c.Validate call.
func New() *requestValidator {
	return &requestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Struct tag violations surface as the
// domain's validation error so the error middleware renders them as 400s.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
