// Package errors defines structured errors with machine-readable codes
// for the cryptor module: MISSING_KEY at construction time, and
// UNSUPPORTED_CIPHER, ENCRYPTION_FAILED, MALFORMED_ENVELOPE, and
// AUTHENTICATION_FAILED on the crypto path. Retryable detection lets
// callers distinguish configuration failures from per-call failures.
package errors
