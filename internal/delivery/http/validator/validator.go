// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a go-playground validate instance for Echo.
type Validator struct {
	validate *playground.Validate
}

// New creates a request validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
