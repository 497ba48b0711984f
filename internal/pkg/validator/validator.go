package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report errors under the json field name the form submitted
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

// Collect validates a struct and returns one message per invalid field,
// all collected so a form can highlight every problem at once. A nil
// map means the value is valid.
func Collect(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors[fe.Field()] = message(fe)
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "gte":
		if fe.Param() == "0" {
			return "Must not be negative"
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "excludesall":
		return "Must not contain spaces"
	case "eqfield":
		return "Fields do not match"
	default:
		return fmt.Sprintf("Failed validation: %s", fe.Tag())
	}
}
