package common

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/scriptsense/constants"
	"github.com/joseph-ayodele/scriptsense/internal/entity"
)

// ValidationError represents validation failures
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed for field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Validator provides validation utilities
type Validator struct {
	errors []ValidationError
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		errors: make([]ValidationError, 0),
	}
}

// Field validates a field and collects errors
func (v *Validator) Field(fieldName string, value interface{}, rules ...ValidationRule) *Validator {
	for _, rule := range rules {
		if err := rule(fieldName, value); err != nil {
			v.errors = append(v.errors, *err)
		}
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns all validation errors
func (v *Validator) Errors() []ValidationError {
	return v.errors
}

// ErrorMessage returns a combined error message as string
func (v *Validator) ErrorMessage() string {
	if !v.HasErrors() {
		return ""
	}

	messages := make([]string, 0, len(v.errors))
	for _, err := range v.errors {
		messages = append(messages, err.Error())
	}
	return strings.Join(messages, "; ")
}

// Err returns nil when valid, otherwise a VALIDATION_ERROR AppError.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	return NewAppError(CodeValidation, v.ErrorMessage(), ErrValidation)
}

// ValidationRule represents a single validation rule
type ValidationRule func(fieldName string, value interface{}) *ValidationError

// Required - Common validation rules
func Required(fieldName string, value interface{}) *ValidationError {
	if value == nil {
		return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return &ValidationError{Field: fieldName, Value: value, Message: "is required"}
		}
	case []byte:
		if len(v) == 0 {
			return &ValidationError{Field: fieldName, Value: "<empty>", Message: "is required"}
		}
	}
	return nil
}

// MaxLength limits a string to max runes.
func MaxLength(max int) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		str, ok := value.(string)
		if !ok {
			return nil
		}
		if utf8.RuneCountInString(str) > max {
			return &ValidationError{
				Field:   fieldName,
				Value:   value,
				Message: fmt.Sprintf("must be at most %d characters", max),
			}
		}
		return nil
	}
}

// MaxBytes limits an int64 size. A non-positive max disables the check.
func MaxBytes(max int64) ValidationRule {
	return func(fieldName string, value interface{}) *ValidationError {
		n, ok := value.(int64)
		if !ok || max <= 0 {
			return nil
		}
		if n > max {
			return &ValidationError{
				Field:   fieldName,
				Value:   value,
				Message: fmt.Sprintf("must be at most %d bytes", max),
			}
		}
		return nil
	}
}

// AllowedMime accepts only the MIME types the pipeline can read.
func AllowedMime(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}
	if _, ok := constants.AllowedMimeTypes[constants.NormalizeMime(str)]; !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "unsupported file type"}
	}
	return nil
}

// SourceKind accepts image, camera or pdf.
func SourceKind(fieldName string, value interface{}) *ValidationError {
	k, ok := value.(constants.SourceKind)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a source kind"}
	}
	for _, allowed := range constants.SourceKinds {
		if string(k) == allowed {
			return nil
		}
	}
	return &ValidationError{Field: fieldName, Value: value, Message: "must be one of " + strings.Join(constants.SourceKinds, ", ")}
}

func UUID(fieldName string, value interface{}) *ValidationError {
	str, ok := value.(string)
	if !ok {
		return &ValidationError{Field: fieldName, Value: value, Message: "must be a string"}
	}

	if _, err := uuid.Parse(str); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Value:   value,
			Message: "must be a valid UUID",
		}
	}
	return nil
}

// ValidateDocument checks a submission before it is queued or processed.
func ValidateDocument(doc entity.SubmittedDocument, maxBytes int64) error {
	v := NewValidator()
	v.Field("file_name", doc.FileName, Required, MaxLength(255))
	v.Field("data", doc.Data, Required)
	v.Field("mime_type", doc.MimeType, AllowedMime)
	v.Field("source", doc.Source, SourceKind)
	v.Field("size", int64(len(doc.Data)), MaxBytes(maxBytes))
	if doc.Source == constants.SourcePDF && !constants.IsPDF(doc.MimeType) {
		v.errors = append(v.errors, ValidationError{Field: "mime_type", Value: doc.MimeType, Message: "pdf source requires application/pdf"})
	}
	return v.Err()
}
