package exceptions

import (
	"careportal-service/internal/pkg/constvars"
	"errors"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field name to the message shown next to it.
type FieldErrors map[string]string

func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}

func (f FieldErrors) Add(field, message string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = message
}

func (f FieldErrors) Fields() []string {
	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// CollectFieldErrors turns every validator failure into a per-field message.
// Field names come from the struct's form tags, nested fields keep their
// namespace below the root struct (medications[0].dosage).
func CollectFieldErrors(err error) FieldErrors {
	fieldErrors := FieldErrors{}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		fieldErrors.Add(fieldPath(fieldErr), formatValidationMessage(fieldErr))
	}
	return fieldErrors
}

func FormatAllValidationErrors(err error) string {
	fieldErrors := CollectFieldErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, field := range fieldErrors.Fields() {
		messages = append(messages, fieldErrors[field])
	}
	return strings.Join(messages, ", ")
}

func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}

func formatValidationMessage(fieldErr validator.FieldError) string {
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return FieldLabel(fieldErr.Field()) + " " + customMessage
}

func FieldLabel(field string) string {
	if label, ok := constvars.FieldLabels[field]; ok {
		return label
	}
	return strings.ReplaceAll(field, "_", " ")
}
