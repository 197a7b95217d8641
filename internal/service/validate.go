package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"lettrix/internal/config"
	"lettrix/internal/domain"
)

var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

// MissingFields returns the names in required whose value is absent or blank,
// in the order they were declared.
func MissingFields(fields domain.FieldMap, required []string) []string {
	if len(required) == 0 {
		return nil
	}

	data := make(map[string]interface{}, len(required))
	rules := make(map[string]interface{}, len(required))
	for _, name := range required {
		data[name] = strings.TrimSpace(fields[name])
		rules[name] = "required"
	}

	errs := fieldValidator.ValidateMap(data, rules)

	var missing []string
	for _, name := range required {
		if _, failed := errs[name]; failed {
			missing = append(missing, name)
		}
	}
	return missing
}

// ValidateRequired checks a Field Map against the category's required fields.
func ValidateRequired(cat *config.Category, fields domain.FieldMap) error {
	missing := MissingFields(fields, cat.Required)
	if len(missing) == 0 {
		return nil
	}
	return &domain.ValidationError{Category: cat.ID, Missing: missing}
}
