package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// formatValidationError turns validator errors into "Field: message" lines
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	lines := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Field()
		param := e.Param()

		switch e.Tag() {
		case "required":
			lines = append(lines, fmt.Sprintf("%s: field is required", field))
		case "min", "gte":
			lines = append(lines, fmt.Sprintf("%s: must be at least %s", field, param))
		case "max", "lte":
			lines = append(lines, fmt.Sprintf("%s: must not exceed %s", field, param))
		case "gt":
			lines = append(lines, fmt.Sprintf("%s: must be greater than %s", field, param))
		case "lt":
			lines = append(lines, fmt.Sprintf("%s: must be less than %s", field, param))
		case "ltefield":
			lines = append(lines, fmt.Sprintf("%s: must not exceed %s", field, param))
		case "oneof":
			lines = append(lines, fmt.Sprintf("%s: must be one of [%s], got %q", field, param, fmt.Sprint(e.Value())))
		default:
			lines = append(lines, fmt.Sprintf("%s: validation failed (%s)", field, e.Tag()))
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(lines, "; "))
}

// checker collects rule violations rather than failing on the first one
type checker struct {
	name   string
	errors []error
}

func newChecker(name string) *checker {
	return &checker{name: name}
}

func (c *checker) maxInt(field string, value, max int) *checker {
	if value > max {
		c.errors = append(c.errors, fmt.Errorf("%s.%s: value %d exceeds maximum %d", c.name, field, value, max))
	}
	return c
}

func (c *checker) err() error {
	if len(c.errors) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(c.errors...))
}
