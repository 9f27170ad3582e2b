// Package validation drives go-playground/validator over the typed input
// structs and converts its failures into the domain's per-field errors.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/wimdy/wimdy/pkg/errcodes"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report failures against the json field name, not the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return v
}

// Struct validates v and returns a *errcodes.ValidationError on failure.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	verr := &errcodes.ValidationError{Fields: make(map[string]string, len(ferrs))}
	for _, fe := range ferrs {
		verr.Fields[fe.Field()] = message(fe)
	}
	return verr
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gte":
		return "must not be negative"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
