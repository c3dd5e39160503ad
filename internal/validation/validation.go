package validation

import (
	"fmt"
	"sort"
	"strings"

	"cafe-backend/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct runs validator tags over a request struct and folds failures into a
// single validation error the UI can show.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := FieldErrors(err)
	parts := make([]string, 0, len(fields))
	for field, tag := range fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", field, tag))
	}
	sort.Strings(parts)

	return apperrors.Validation("invalid request: " + strings.Join(parts, ", "))
}

// FieldErrors maps each failing field to its violated tag.
func FieldErrors(err error) map[string]string {
	out := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}

	for _, ve := range validationErrors {
		out[ve.Field()] = ve.Tag()
	}
	return out
}
