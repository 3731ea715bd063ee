// Package validator adapts go-playground/validator to echo's Validator
// interface and registers the project's custom rules.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	domainerrors "backoffice/internal/domain/errors"
)

// imageURLPattern accepts http(s) URLs ending in a common image extension.
var imageURLPattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif)$`)

// Validator wraps a validator.Validate instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules registered.
func New() *Validator {
	v := validator.New()

	// Never fails: the pattern function signature has no error path.
	_ = v.RegisterValidation("imageurl", func(fl validator.FieldLevel) bool {
		return imageURLPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate implements echo.Validator. Rule violations map to the validation
// error of the catalogue so the error middleware renders them as 400s.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	return nil
}
