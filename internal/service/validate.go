package service

import (
	"strings"

	"github.com/abgdnv/products-api/internal/apperrors"
)

// productFields are the recognized mutable attributes of a product.
// Anything else in a payload is ignored by the merge and does not count
// towards "at least one field provided" on update.
var productFields = []string{"name", "description", "price", "category", "inStock"}

// validateCreate checks a create payload. All five fields are required and
// every violation is reported, not just the first.
func validateCreate(payload map[string]any) []apperrors.FieldError {
	var errs []apperrors.FieldError

	if !isNonEmptyString(payload["name"]) {
		errs = append(errs, apperrors.FieldError{Field: "name", Message: "Name must be a non-empty string."})
	}
	if !isNonEmptyString(payload["description"]) {
		errs = append(errs, apperrors.FieldError{Field: "description", Message: "Description must be a non-empty string."})
	}
	if !isPositiveNumber(payload["price"]) {
		errs = append(errs, apperrors.FieldError{Field: "price", Message: "Price must be a positive number."})
	}
	if !isNonEmptyString(payload["category"]) {
		errs = append(errs, apperrors.FieldError{Field: "category", Message: "Category must be a non-empty string."})
	}
	// inStock must be explicitly present; there is no default.
	if _, ok := payload["inStock"].(bool); !ok {
		errs = append(errs, apperrors.FieldError{Field: "inStock", Message: "inStock must be a boolean (true/false)."})
	}
	return errs
}

// validateUpdate checks an update payload. Fields are optional, but any field
// that is present must satisfy the same rule as on create, and at least one
// recognized field must be supplied.
func validateUpdate(payload map[string]any) []apperrors.FieldError {
	var errs []apperrors.FieldError
	hasUpdateFields := false

	if v, ok := payload["name"]; ok {
		hasUpdateFields = true
		if !isNonEmptyString(v) {
			errs = append(errs, apperrors.FieldError{Field: "name", Message: "Name must be a non-empty string if provided."})
		}
	}
	if v, ok := payload["description"]; ok {
		hasUpdateFields = true
		if !isNonEmptyString(v) {
			errs = append(errs, apperrors.FieldError{Field: "description", Message: "Description must be a non-empty string if provided."})
		}
	}
	if v, ok := payload["price"]; ok {
		hasUpdateFields = true
		if !isPositiveNumber(v) {
			errs = append(errs, apperrors.FieldError{Field: "price", Message: "Price must be a positive number if provided."})
		}
	}
	if v, ok := payload["category"]; ok {
		hasUpdateFields = true
		if !isNonEmptyString(v) {
			errs = append(errs, apperrors.FieldError{Field: "category", Message: "Category must be a non-empty string if provided."})
		}
	}
	if v, ok := payload["inStock"]; ok {
		hasUpdateFields = true
		if _, isBool := v.(bool); !isBool {
			errs = append(errs, apperrors.FieldError{Field: "inStock", Message: "inStock must be a boolean (true/false) if provided."})
		}
	}

	if !hasUpdateFields {
		errs = append(errs, apperrors.FieldError{
			Message: "At least one field (" + strings.Join(productFields, ", ") + ") must be provided for update.",
		})
	}
	return errs
}

// isNonEmptyString reports whether v is a string with non-whitespace content.
func isNonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

// isPositiveNumber reports whether v is a JSON number > 0.
// encoding/json decodes every JSON number into float64.
func isPositiveNumber(v any) bool {
	n, ok := v.(float64)
	return ok && n > 0
}
