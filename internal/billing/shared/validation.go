package shared

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/procura/billing/internal/platform/httpx"
)

// Messages maps a JSON field name, or "field.tag", to the message returned
// to clients when that field fails validation.
type Messages map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks struct tags on req and reports the first failing field as
// an httpx.ErrValidation.
func Validate(req any, messages Messages) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	fe := fieldErrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, msg)
	}
	if msg, ok := messages[fe.Field()]; ok {
		return fmt.Errorf("%w: %s", httpx.ErrValidation, msg)
	}
	return fmt.Errorf("%w: %s", httpx.ErrValidation, describe(fe))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if idx := strings.Index(field, "."); idx >= 0 {
		field = field[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
