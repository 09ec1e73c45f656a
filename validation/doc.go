// Package validation provides struct validation for cryptor configuration
// using go-playground/validator.
package validation
