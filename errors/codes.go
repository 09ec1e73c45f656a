package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Construction errors (fatal, not recoverable by retry)
const (
	// ErrCodeMissingKey indicates no secret could be resolved for the codec.
	ErrCodeMissingKey ErrorCode = "MISSING_KEY"
)

// Encryption-path errors
const (
	// ErrCodeUnsupportedCipher indicates the cipher name is not recognized
	// or reports an invalid IV length.
	ErrCodeUnsupportedCipher ErrorCode = "UNSUPPORTED_CIPHER"
	// ErrCodeEncryptionFailed indicates the underlying transform failed for
	// reasons other than bad input (e.g., the random source or provider).
	ErrCodeEncryptionFailed ErrorCode = "ENCRYPTION_FAILED"
)

// Decryption-path errors
const (
	// ErrCodeMalformedEnvelope indicates the decrypt input is not a valid
	// envelope: bad encoding, bad structure, or missing required fields.
	ErrCodeMalformedEnvelope ErrorCode = "MALFORMED_ENVELOPE"
	// ErrCodeAuthenticationFailed indicates the AEAD tag did not verify.
	// Possible tampering or wrong key/AAD. Never retried with the same inputs.
	ErrCodeAuthenticationFailed ErrorCode = "AUTHENTICATION_FAILED"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates caller-supplied configuration is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required configuration field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeMissingKey:           false,
	ErrCodeUnsupportedCipher:    false,
	ErrCodeEncryptionFailed:     true,
	ErrCodeMalformedEnvelope:    false,
	ErrCodeAuthenticationFailed: false,
	ErrCodeInvalidInput:         false,
	ErrCodeMissingField:         false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
