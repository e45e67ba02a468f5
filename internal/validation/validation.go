package validation

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report struct fields by the environment variable they are read from
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("env"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := validate.RegisterValidation("weburl", validateWebURL); err != nil {
		panic(fmt.Sprintf("failed to register weburl validation: %v", err))
	}
}

// Validate validates a struct using tags
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Var validates a single value against a tag expression, e.g. "required,url"
func Var(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// ValidateWebURL validates an http(s) URL separately
func ValidateWebURL(urlStr string) error {
	return validate.Var(urlStr, "required,weburl")
}

func validateWebURL(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil {
		return false
	}

	// - Must have a scheme (http or https)
	// - Must have a host
	// - No fragments allowed
	return (u.Scheme == "http" || u.Scheme == "https") &&
		u.Host != "" &&
		u.Fragment == ""
}

// FieldError represents a single failed rule
type FieldError struct {
	Field string
	Tag   string
	Param string
	Error string
}

// FormatError formats a validation error into human-readable messages
func FormatError(err error) []FieldError {
	var fieldErrors []FieldError

	if err == nil {
		return fieldErrors
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fieldErrors
	}

	for _, e := range errs {
		field := e.Field()
		if field == "" {
			field = "value"
		}

		var message string
		switch e.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "url":
			message = "Invalid URL format"
		case "weburl":
			message = "Invalid URL format. Must be a valid http or https URL"
		case "oneof":
			message = fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(e.Param()), ", "))
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, e.Param())
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, e.Param())
		default:
			message = fmt.Sprintf("Invalid value for %s", field)
		}

		fieldErrors = append(fieldErrors, FieldError{
			Field: e.Field(),
			Tag:   e.Tag(),
			Param: e.Param(),
			Error: message,
		})
	}

	return fieldErrors
}
