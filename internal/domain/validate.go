package domain

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	goa "goa.design/goa/v3/pkg"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names so errors match the request body.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks v against its validate tags. Field failures are returned as goa validation
// errors merged into a single *goa.ServiceError.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return goa.DecodePayloadError(err.Error())
	}
	var merged error
	for _, fe := range fieldErrs {
		merged = goa.MergeErrors(merged, toGoaError(fe))
	}
	return merged
}

// toGoaError maps a single validator failure onto the goa error carrying the same constraint.
func toGoaError(fe validator.FieldError) error {
	name := "body." + fe.Field()
	value := fe.Value()
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		value = rv.Elem().Interface()
	}

	switch fe.Tag() {
	case "required":
		return goa.MissingFieldError(fe.Field(), "body")
	case "email":
		return goa.InvalidFormatError(name, toString(value), goa.FormatEmail, errors.New("invalid email address"))
	case "oneof":
		allowed := []any{}
		for _, a := range strings.Fields(fe.Param()) {
			allowed = append(allowed, a)
		}
		return goa.InvalidEnumValueError(name, value, allowed)
	case "min", "max", "gte", "lte":
		param, _ := strconv.Atoi(fe.Param())
		isMin := fe.Tag() == "min" || fe.Tag() == "gte"
		if s, ok := value.(string); ok {
			return goa.InvalidLengthError(name, s, utf8.RuneCountInString(s), param, isMin)
		}
		if fe.Kind() == reflect.String {
			s := toString(value)
			return goa.InvalidLengthError(name, s, utf8.RuneCountInString(s), param, isMin)
		}
		return goa.InvalidRangeError(name, value, param, isMin)
	default:
		return goa.InvalidFieldTypeError(name, value, fe.Tag())
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return ""
}
