package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type returned by cryptor packages.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Retryable: IsRetryableCode(code),
	}
}

// --- Taxonomy Constructors ---

// MissingKey creates a new AppError for an unresolvable encryption secret.
// Raised at construction time; fatal and not recoverable by retry.
func MissingKey() *AppError {
	return &AppError{
		Code:    ErrCodeMissingKey,
		Message: "No encryption secret was resolvable. Provide a non-empty secret or set the key environment variable.",
	}
}

// UnsupportedCipher creates a new AppError for an unrecognized cipher name.
func UnsupportedCipher(cipher string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedCipher,
		Message: fmt.Sprintf("Cipher %q is not supported.", cipher),
		Details: map[string]any{"cipher": cipher},
	}
}

// EncryptionFailed creates a new AppError for a provider-level transform failure.
func EncryptionFailed(cause error) *AppError {
	return &AppError{
		Code: ErrCodeEncryptionFailed, Message: "The encryption transform failed.",
		Retryable: true, Cause: cause,
	}
}

// MalformedEnvelope creates a new AppError for structurally invalid decrypt input.
func MalformedEnvelope(reason string) *AppError {
	return &AppError{
		Code:    ErrCodeMalformedEnvelope,
		Message: fmt.Sprintf("Invalid envelope: %s", reason),
	}
}

// AuthenticationFailed creates a new AppError for an AEAD tag that did not
// verify. Treat as a security-relevant event (possible tampering or wrong
// key/AAD); do not retry with the same inputs.
func AuthenticationFailed() *AppError {
	return &AppError{
		Code:    ErrCodeAuthenticationFailed,
		Message: "Payload authentication failed.",
	}
}

// InvalidInput creates a new AppError for invalid caller configuration.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// Validation creates a new AppError for validation errors.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidInput, Message: message,
	}
}

// MissingField creates a new AppError for a missing required configuration field.
func MissingField(field string) *AppError {
	return &AppError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError carrying the given code.
func IsCode(err error, code ErrorCode) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}
