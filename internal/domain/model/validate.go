package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the shared validator. Field names in validation
// errors are the JSON wire names, so per-field messages line up with what
// the client actually sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate runs the tagged schema checks for a request struct. The returned
// error is a validator.ValidationErrors when any field fails, so callers can
// translate it into per-field messages.
func Validate(v any) error {
	return validate.Struct(v)
}
