package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest validates a decoded request body and returns the failed
// fields mapped to the failed rule, or nil.
func validateRequest(req interface{}) map[string]interface{} {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string]interface{}{"request": err.Error()}
	}

	details := make(map[string]interface{}, len(fieldErrors))
	for _, e := range fieldErrors {
		if e.Param() != "" {
			details[e.Field()] = e.Tag() + "=" + e.Param()
		} else {
			details[e.Field()] = e.Tag()
		}
	}
	return details
}
