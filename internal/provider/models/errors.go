package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for common provider failures.
var (
	// Context/Token errors
	ErrContextLengthExceeded = errors.New("context length exceeded")

	// Safety/Content errors
	ErrContentBlocked = errors.New("content blocked by safety filters")

	// Rate limiting errors
	ErrRateLimit     = errors.New("rate limit exceeded")
	ErrQuotaExceeded = errors.New("quota exceeded")

	// Model errors
	ErrInvalidModel = errors.New("invalid model")

	// Authentication errors
	ErrAuthentication   = errors.New("authentication failed")
	ErrPermissionDenied = errors.New("permission denied")

	// Network errors
	ErrNetwork            = errors.New("network error")
	ErrTimeout            = errors.New("request timeout")
	ErrServiceUnavailable = errors.New("service unavailable")

	// Request errors
	ErrInvalidRequest = errors.New("invalid request")

	// Response errors
	ErrEmptyResponse = errors.New("model returned no candidates")
)

// ErrorCode represents a provider error code.
type ErrorCode string

const (
	ErrorCodeContextLength  ErrorCode = "context_length_exceeded"
	ErrorCodeContentBlocked ErrorCode = "content_blocked"
	ErrorCodeRateLimit      ErrorCode = "rate_limit"
	ErrorCodeQuota          ErrorCode = "quota_exceeded"
	ErrorCodeInvalidModel   ErrorCode = "invalid_model"
	ErrorCodeAuth           ErrorCode = "authentication_failed"
	ErrorCodePermission     ErrorCode = "permission_denied"
	ErrorCodeNetwork        ErrorCode = "network_error"
	ErrorCodeTimeout        ErrorCode = "timeout"
	ErrorCodeUnavailable    ErrorCode = "service_unavailable"
	ErrorCodeInvalidRequest ErrorCode = "invalid_request"
	ErrorCodeEmptyResponse  ErrorCode = "empty_response"
)

// ProviderError wraps errors with additional context.
// Is matches the sentinel error that corresponds to Code.
type ProviderError struct {
	Code       ErrorCode
	Message    string
	Underlying error
	Retryable  bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Underlying)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *ProviderError) Unwrap() error {
	return e.Underlying
}

var codeSentinels = map[ErrorCode]error{
	ErrorCodeContextLength:  ErrContextLengthExceeded,
	ErrorCodeContentBlocked: ErrContentBlocked,
	ErrorCodeRateLimit:      ErrRateLimit,
	ErrorCodeQuota:          ErrQuotaExceeded,
	ErrorCodeInvalidModel:   ErrInvalidModel,
	ErrorCodeAuth:           ErrAuthentication,
	ErrorCodePermission:     ErrPermissionDenied,
	ErrorCodeNetwork:        ErrNetwork,
	ErrorCodeTimeout:        ErrTimeout,
	ErrorCodeUnavailable:    ErrServiceUnavailable,
	ErrorCodeInvalidRequest: ErrInvalidRequest,
	ErrorCodeEmptyResponse:  ErrEmptyResponse,
}

// Is reports whether target is the sentinel for this error's code.
func (e *ProviderError) Is(target error) bool {
	sentinel, ok := codeSentinels[e.Code]
	return ok && sentinel == target
}

// IsRetryable returns true if the error is retryable.
func IsRetryable(err error) bool {
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}
	return false
}
