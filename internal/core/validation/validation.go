// Package validation wraps go-playground/validator for request DTOs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidInput is matched by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes one failed rule.
type FieldError struct {
	// Field is the JSON name of the offending field.
	Field string `json:"field"`
	// Rule is the validator tag that failed (e.g. "oneof").
	Rule string `json:"rule"`
	// Param is the rule parameter, if any.
	Param string `json:"param,omitempty"`
}

// Error is returned by Validate when one or more rules fail.
type Error struct {
	// Fields lists the failures in struct declaration order.
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Param != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", f.Field, f.Rule, f.Param))
		} else {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s", f.Field, f.Rule))
		}
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match with errors.Is(err, ErrInvalidInput).
func (e *Error) Unwrap() error {
	return ErrInvalidInput
}

// Validator validates structs using `validate` tags.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports fields by their json/query names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	return &Validator{v: v}
}

// Validate checks s and returns *Error on rule failures.
func (val *Validator) Validate(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
