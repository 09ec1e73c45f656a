// Package logger provides structured logging for the cryptor module
// using zerolog.
//
// It supports JSON and console output, level configuration from the
// environment, and component-scoped loggers with structured fields.
// Derived keys and secrets are never logged; security-relevant events
// such as authentication failures are reported with cipher names and
// error codes only.
//
// # Usage
//
//	log := logger.NewFromEnv().WithComponent("cryptor")
//	log.Warn("payload authentication failed", logger.Fields("cipher", "aes-256-gcm"))
package logger
