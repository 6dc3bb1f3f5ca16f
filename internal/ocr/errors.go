package ocr

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/joseph-ayodele/scriptsense/internal/common"
)

// FailureKind classifies why a provider call produced no usable text.
type FailureKind string

const (
	KindNetwork     FailureKind = "network"
	KindTimeout     FailureKind = "timeout"
	KindStatus      FailureKind = "status"
	KindEmpty       FailureKind = "empty"
	KindMalformed   FailureKind = "malformed"
	KindUnavailable FailureKind = "unavailable"
)

// ProviderError is a single failed attempt against one provider.
type ProviderError struct {
	Provider   string
	Kind       FailureKind
	StatusCode int // set for KindStatus
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func newProviderError(provider string, kind FailureKind, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

func statusError(provider string, code int, body string) *ProviderError {
	return &ProviderError{Provider: provider, Kind: KindStatus, StatusCode: code, Err: errors.New(truncate(body, 512))}
}

// transportError tags timeouts apart from other network failures.
func transportError(provider string, err error) *ProviderError {
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		return newProviderError(provider, KindTimeout, err)
	}
	return newProviderError(provider, KindNetwork, err)
}

var errBlankText = errors.New("provider returned no text")

// FallbackExhaustedError keeps both causes when neither link of a chain
// produced text.
type FallbackExhaustedError struct {
	Primary  error
	Fallback error
}

func (e *FallbackExhaustedError) Error() string {
	return fmt.Sprintf("ocr failed. primary error: %v. fallback error: %v", e.Primary, e.Fallback)
}

func (e *FallbackExhaustedError) Unwrap() []error { return []error{e.Primary, e.Fallback} }

func (e *FallbackExhaustedError) Is(target error) bool {
	t, ok := target.(*common.AppError)
	return ok && t.Code == common.CodeProviderFallbackExhausted
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
