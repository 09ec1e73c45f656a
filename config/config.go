package config

import (
	"github.com/lazervel/cryptor/validation"
)

// DefaultCipher is used when no cipher is configured.
const DefaultCipher = "aes-256-gcm"

// Config contains the settings the envelope codec is constructed from.
// Projects embed or populate it from their own configuration layer.
type Config struct {
	// Key is the raw application secret. It is hashed, never used directly.
	Key string `yaml:"key" mapstructure:"key" validate:"required"`
	// Cipher is the default cipher name for encrypt calls.
	Cipher string `yaml:"cipher" mapstructure:"cipher" validate:"omitempty,oneof=aes-256-gcm aes-128-gcm aes-256-cbc chacha20-poly1305"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.Cipher == "" {
		c.Cipher = DefaultCipher
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
