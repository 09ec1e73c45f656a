package cryptor

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
	"sync"

	"github.com/lazervel/cryptor/config"
	"github.com/lazervel/cryptor/errors"
	"github.com/lazervel/cryptor/logger"
)

// Cryptor is the AEAD envelope codec. It derives a 32-byte key from the
// application secret once at construction and holds it for the codec's
// lifetime; Close wipes it. A Cryptor is safe for concurrent use.
type Cryptor struct {
	key           *derivedKey
	defaultCipher string
	log           *logger.Logger

	// mu lets Close wipe the key without racing in-flight calls.
	mu     sync.RWMutex
	closed bool
}

// Option configures a Cryptor.
type Option func(*Cryptor)

// WithCipher selects the default cipher for Encrypt calls
// (default: aes-256-gcm).
func WithCipher(name string) Option {
	return func(c *Cryptor) { c.defaultCipher = name }
}

// WithLogger attaches a structured logger. Authentication failures are
// reported through it as security-relevant events. Key material is never
// logged.
func WithLogger(log *logger.Logger) Option {
	return func(c *Cryptor) { c.log = log.WithComponent("cryptor") }
}

// New creates a Cryptor from an explicit secret. The secret is hashed with
// SHA-256 into the derived key and not retained. An empty secret fails
// with a MissingKey error.
func New(secret string, opts ...Option) (*Cryptor, error) {
	if secret == "" {
		return nil, errors.MissingKey()
	}

	c := &Cryptor{
		key:           deriveKey([]byte(secret)),
		defaultCipher: config.DefaultCipher,
		log:           logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if _, err := lookupSuite(c.defaultCipher); err != nil {
		return nil, err
	}
	return c, nil
}

// NewFromEnv creates a Cryptor with the secret resolved from the
// environment (CRYPTOR_KEY, then APP_KEY, honoring a local .env file).
func NewFromEnv(opts ...Option) (*Cryptor, error) {
	secret, err := config.ResolveSecret()
	if err != nil {
		return nil, err
	}
	return New(secret, opts...)
}

// NewFromConfig creates a Cryptor from a resolved configuration. Explicit
// options take precedence over the config's cipher.
func NewFromConfig(cfg config.Config, opts ...Option) (*Cryptor, error) {
	cfg.ApplyDefaults()
	return New(cfg.Key, append([]Option{WithCipher(cfg.Cipher)}, opts...)...)
}

// DefaultCipher returns the cipher name used by Encrypt.
func (c *Cryptor) DefaultCipher() string {
	return c.defaultCipher
}

// Encrypt encrypts plaintext under the default cipher with the given AAD
// and returns the encoded envelope. AAD is authenticated but not stored;
// Decrypt must be called with matching AAD.
func (c *Cryptor) Encrypt(plaintext, aad []byte) (string, error) {
	return c.EncryptWithCipher(c.defaultCipher, plaintext, aad)
}

// EncryptWithCipher encrypts plaintext under the named cipher. A fresh
// random IV is generated per call; IV reuse under the same key would break
// the AEAD guarantees, so IVs are never cached or derived from input.
// Non-AEAD ciphers produce no tag and silently ignore aad.
func (c *Cryptor) EncryptWithCipher(cipherName string, plaintext, aad []byte) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return "", errClosed()
	}

	s, err := lookupSuite(cipherName)
	if err != nil {
		return "", err
	}

	iv := make([]byte, s.ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", errors.EncryptionFailed(fmt.Errorf("generate iv: %w", err))
	}

	ciphertext, tag, err := s.seal(c.key.slice(s.keySize), iv, plaintext, aad)
	if err != nil {
		c.log.Error("encryption transform failed", logger.ErrorFields("encrypt", err))
		return "", errors.EncryptionFailed(err)
	}

	env := &Envelope{IV: iv, Value: ciphertext, Cipher: s.name, Tag: tag}
	c.log.Debug("payload encrypted", logger.Fields(
		logger.FieldOperation, "encrypt",
		logger.FieldCipher, s.name,
	))
	return env.Encode(), nil
}

// Decrypt decodes the envelope, resolves its cipher, and verifies the tag
// against (key, iv, ciphertext, aad) before releasing plaintext. Any
// mismatch fails with an AuthenticationFailed error and no partial output.
func (c *Cryptor) Decrypt(envelopeText string, aad []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return nil, errClosed()
	}

	env, err := DecodeEnvelope(envelopeText)
	if err != nil {
		return nil, err
	}

	s, err := lookupSuite(env.Cipher)
	if err != nil {
		return nil, err
	}
	if len(env.IV) != s.ivSize {
		return nil, errors.MalformedEnvelope("iv length does not match cipher").
			WithDetail("cipher", env.Cipher)
	}

	plaintext, err := s.open(c.key.slice(s.keySize), env.IV, env.Value, env.Tag, aad)
	if err != nil {
		c.log.Warn("payload authentication failed", logger.Fields(
			logger.FieldOperation, "decrypt",
			logger.FieldCipher, env.Cipher,
			logger.FieldEnvelopeLen, len(envelopeText),
		))
		return nil, errors.AuthenticationFailed().WithCause(err)
	}
	return plaintext, nil
}

// Verify decrypts envelopeText with aad and compares the result to plain
// in constant time. Any decryption failure yields false.
func (c *Cryptor) Verify(plain []byte, envelopeText string, aad []byte) bool {
	plaintext, err := c.Decrypt(envelopeText, aad)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(plaintext, plain) == 1
}

// EncryptString is a convenience wrapper around Encrypt with no AAD.
func (c *Cryptor) EncryptString(plaintext string) (string, error) {
	return c.Encrypt([]byte(plaintext), nil)
}

// DecryptString is a convenience wrapper around Decrypt with no AAD.
func (c *Cryptor) DecryptString(envelopeText string) (string, error) {
	plaintext, err := c.Decrypt(envelopeText, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Close wipes the derived key. Subsequent operations fail with a
// MissingKey error. Close is idempotent and safe to call concurrently
// with in-flight operations, which either complete or observe the closed
// state.
func (c *Cryptor) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.key.zero()
		c.closed = true
	}
	return nil
}

func errClosed() *errors.AppError {
	return errors.MissingKey().WithDetail("reason", "codec is closed")
}

// String identifies the codec without exposing key material.
func (c *Cryptor) String() string {
	return fmt.Sprintf("cryptor.Cryptor(cipher=%s)", c.defaultCipher)
}

// GoString mirrors String so %#v never dumps fields.
func (c *Cryptor) GoString() string { return c.String() }

// Format intercepts all fmt verbs, including %v and %+v, which would
// otherwise print struct internals reflectively.
func (c *Cryptor) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, c.String())
}

// MarshalJSON serializes only the cipher name, never the key.
func (c *Cryptor) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("{%q:%q}", "cipher", c.defaultCipher)), nil
}
