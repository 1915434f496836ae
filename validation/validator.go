// SPDX-License-Identifier: MIT

// Package validation wraps go-playground/validator with the error format used
// across roadnet: "<Field>: <reason>" for the first failing field.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance; it caches struct metadata.
var validate = validator.New()

// ErrNilStruct is returned when Struct receives nil.
var ErrNilStruct = errors.New("validation: value cannot be nil")

// Struct validates v against its `validate` tags and returns the first
// violation in a user-friendly form, or nil.
func Struct(v any) error {
	if v == nil {
		return ErrNilStruct
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}

	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first violation only.
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s", field, param)
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s", field, param)
		case "oneof":
			return fmt.Errorf("%s: must be one of [%s]", field, param)
		case "nefield":
			return fmt.Errorf("%s: must differ from %s", field, param)
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
