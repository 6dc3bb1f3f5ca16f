package common

import (
	"errors"
	"fmt"
)

// Error codes
const (
	CodeConfig                    = "CONFIG_ERROR"
	CodeValidation                = "VALIDATION_ERROR"
	CodeClassification            = "CLASSIFICATION_ERROR"
	CodeRasterization             = "RASTERIZATION_ERROR"
	CodePageOCR                   = "PAGE_OCR_ERROR"
	CodeProviderFallbackExhausted = "PROVIDER_FALLBACK_EXHAUSTED"
	CodeLanguageIdentification    = "LANGUAGE_IDENTIFICATION_ERROR"
	CodeAggregation               = "AGGREGATION_ERROR"
	CodeProcessingTimeout         = "PROCESSING_TIMEOUT"
	CodeStorage                   = "STORAGE_FAILED"
	CodeNotFound                  = "NOT_FOUND"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches any AppError carrying the same code, so the Err* kinds below
// work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrValidation   = errors.New("validation failed")
)

// Pipeline error kinds, matched by code.
var (
	ErrClassification            = &AppError{Code: CodeClassification}
	ErrRasterization             = &AppError{Code: CodeRasterization}
	ErrPageOCR                   = &AppError{Code: CodePageOCR}
	ErrProviderFallbackExhausted = &AppError{Code: CodeProviderFallbackExhausted}
	ErrLanguageIdentification    = &AppError{Code: CodeLanguageIdentification}
	ErrAggregation               = &AppError{Code: CodeAggregation}
	ErrProcessingTimeout         = &AppError{Code: CodeProcessingTimeout}
	ErrStorage                   = &AppError{Code: CodeStorage}
)

// Error constructors
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func NewClassificationError(cause error) *AppError {
	return NewAppError(CodeClassification, "failed to classify PDF", cause)
}

func NewRasterizationError(cause error) *AppError {
	return NewAppError(CodeRasterization, "failed to rasterize PDF", cause)
}

func NewAggregationError(cause error) *AppError {
	return NewAppError(CodeAggregation, "failed to aggregate page results", cause)
}

func NewProcessingTimeoutError(stage string, cause error) *AppError {
	return NewAppError(CodeProcessingTimeout, fmt.Sprintf("run aborted during %s", stage), cause)
}

func NewStorageError(cause error) *AppError {
	return NewAppError(CodeStorage, "failed to store processing result", cause)
}

func NewNotFoundError(what string) *AppError {
	return NewAppError(CodeNotFound, what+" not found", ErrNotFound)
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// IsFatal reports whether err aborts a whole submission rather than one page.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, ErrPageOCR) && !errors.Is(err, ErrLanguageIdentification)
}
