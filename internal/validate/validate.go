// Package validate bridges go-playground/validator into Echo so
// handlers can call c.Validate on bound request DTOs.
package validate

import "github.com/go-playground/validator/v10"

// Validator wraps a validator.Validate instance and satisfies
// echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator ready to be assigned to echo.Echo.Validator.
func New() *Validator {
	return &Validator{v: validator.New()}
}

// Validate runs struct validation against the `validate` tags of i.
func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
