package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"sportsinventory/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, err := range validationErrs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// Check validates v and reports failures as domain.ErrConstraintViolation,
// listing the offending fields in a stable order.
func Check(v interface{}) error {
	fields := Validate(v)
	if fields == nil {
		return nil
	}

	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, field+"="+tag)
	}
	sort.Strings(parts)
	return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, strings.Join(parts, ", "))
}
