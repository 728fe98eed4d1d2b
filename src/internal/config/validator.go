package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.ConfigVersion > CurrentConfigVersion {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "config_version",
			Message:   fmt.Sprintf("unsupported config version %d (max %d)", c.ConfigVersion, CurrentConfigVersion),
		})
	}

	if c.General != nil {
		if err := validate.Struct(c.General); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
		}
	}

	if c.Store != nil {
		if err := validate.Struct(c.Store); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "store", "")...)
		}
	}

	if c.Server != nil {
		if err := validate.Struct(c.Server); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "server", "")...)
		}
		validationErrors = append(validationErrors, c.validateOperationPath()...)
	}

	if c.GetStoreDriver() == StoreDriverRemote && (c.Server == nil || c.Server.URL == "") {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "server.url",
			Message:   "is required when store.driver is \"remote\"",
		})
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateOperationPath() ValidationErrors {
	path := c.GetOperationPath()
	if !strings.HasPrefix(path, "/") {
		return ValidationErrors{{
			FieldPath: "server.operation_path",
			Message:   "must start with '/'",
		}}
	}

	tmpl, err := fasttemplate.NewTemplate(path, "{{", "}}")
	if err != nil {
		return ValidationErrors{{
			FieldPath: "server.operation_path",
			Message:   err.Error(),
		}}
	}

	var unknown []string
	tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if tag != "operation" {
			unknown = append(unknown, tag)
		}
		return 0, nil
	})
	if len(unknown) > 0 {
		return ValidationErrors{{
			FieldPath: "server.operation_path",
			Message:   fmt.Sprintf("unknown template variables: %s (available: {{operation}})", strings.Join(unknown, ", ")),
		}}
	}
	if !strings.Contains(path, "{{operation}}") {
		return ValidationErrors{{
			FieldPath: "server.operation_path",
			Message:   "must contain {{operation}}",
		}}
	}
	return nil
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
