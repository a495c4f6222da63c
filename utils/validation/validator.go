package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator that reports fields by their JSON name
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	return &Validator{
		validate: v,
	}
}

// ValidateStruct validates a struct using struct tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldFailure describes the first rule a struct broke
type FieldFailure struct {
	Field string
	Tag   string
}

// Message renders the failure the way the API reports it
func (f FieldFailure) Message() string {
	switch f.Tag {
	case "required":
		return fmt.Sprintf("Missing %s", f.Field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", f.Field)
	case "min":
		return fmt.Sprintf("%s is too short", f.Field)
	case "max":
		return fmt.Sprintf("%s is too long", f.Field)
	case "gte":
		return fmt.Sprintf("%s is too small", f.Field)
	case "lte":
		return fmt.Sprintf("%s is too large", f.Field)
	default:
		return fmt.Sprintf("%s is invalid", f.Field)
	}
}

// FirstFailure returns the first failing field in struct declaration order.
// ok is false when err is not a validation error.
func FirstFailure(err error) (FieldFailure, bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return FieldFailure{}, false
	}

	first := validationErrs[0]
	return FieldFailure{Field: first.Field(), Tag: first.Tag()}, true
}
