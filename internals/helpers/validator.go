package helper

import (
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// ValidateStruct runs the shared validator and returns field errors keyed by
// struct field, or nil when s passes. Callers render the map with
// JsonValidationError.
func ValidateStruct(s any) map[string][]string {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"_": {"invalid input"}}
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fieldErrors[fe.Field()] = append(fieldErrors[fe.Field()], fe.Tag())
	}
	return fieldErrors
}
