// Package validation wraps go-playground/validator for form validation.
// It converts validator errors into field → message maps that templates can
// render next to each input.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // compiled once, read-only
var (
	phonePattern = regexp.MustCompile(`^0[0-9]{8,9}$`)

	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate returns the shared validator instance with custom rules registered.
// Field names in errors come from the `form` struct tag so they match the
// HTML input names.
func Validate() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// Israeli phone number: leading zero, 9-10 digits, dashes allowed.
		_ = v.RegisterValidation("ilphone", func(fl validator.FieldLevel) bool {
			digits := strings.ReplaceAll(fl.Field().String(), "-", "")
			return phonePattern.MatchString(digits)
		})

		// Password complexity: at least one upper, lower, digit, and special character.
		_ = v.RegisterValidation("complexity", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			var upper, lower, digit, special bool
			for _, c := range s {
				switch {
				case c >= 'A' && c <= 'Z':
					upper = true
				case c >= 'a' && c <= 'z':
					lower = true
				case c >= '0' && c <= '9':
					digit = true
				case strings.ContainsRune("!@#$%^&*-_", c):
					special = true
				}
			}
			return upper && lower && digit && special
		})

		validate = v
	})
	return validate
}

// Struct validates a tagged form struct and returns field errors keyed by the
// form field name. An empty map means the struct is valid.
func Struct(s any) map[string]string {
	err := Validate().Struct(s)
	if err == nil {
		return map[string]string{}
	}

	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns this type directly
	if !ok {
		return map[string]string{"_": "Invalid form submission."}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue // keep the first error per field
		}
		out[fe.Field()] = messageFor(fe)
	}
	return out
}

// messageFor maps a validator tag to a user-facing sentence.
func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min":
		if fe.Kind() == reflect.String {
			return label + " must be at least " + fe.Param() + " characters."
		}
		return label + " must be at least " + fe.Param() + "."
	case "max":
		if fe.Kind() == reflect.String {
			return label + " must be at most " + fe.Param() + " characters."
		}
		return label + " must be at most " + fe.Param() + "."
	case "email":
		return "Enter a valid email address."
	case "url":
		return "Enter a valid URL."
	case "ilphone":
		return "Enter a valid phone number."
	case "complexity":
		return "Password must contain an uppercase letter, a lowercase letter, a digit, and one of !@#$%^&*-_."
	case "eqfield":
		return "Passwords do not match."
	default:
		return label + " is invalid."
	}
}

// labelFor turns a form field name like "house_number" into "House number".
func labelFor(field string) string {
	field = strings.ReplaceAll(field, "_", " ")
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
