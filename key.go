package cryptor

import (
	"crypto/sha256"
	"fmt"
)

// derivedKeySize is the SHA-256 digest length. Every derived key is exactly
// this long regardless of the secret's length.
const derivedKeySize = 32

const redactedKey = "[REDACTED]"

// derivedKey holds the SHA-256 digest of the application secret. It refuses
// every default textual and structural representation so key material never
// reaches logs, dumps, or serialized output.
type derivedKey struct {
	bytes [derivedKeySize]byte
}

// deriveKey computes SHA-256(secret). Deterministic: the same secret yields
// the same key, so envelopes are interoperable across processes.
func deriveKey(secret []byte) *derivedKey {
	return &derivedKey{bytes: sha256.Sum256(secret)}
}

// slice returns the first n bytes of the key for ciphers with shorter keys.
func (k *derivedKey) slice(n int) []byte {
	return k.bytes[:n:n]
}

// zero wipes the key material in place.
func (k *derivedKey) zero() {
	for i := range k.bytes {
		k.bytes[i] = 0
	}
}

func (k *derivedKey) String() string   { return redactedKey }
func (k *derivedKey) GoString() string { return redactedKey }

// Format intercepts all fmt verbs, including %v, %+v and %#v.
func (k *derivedKey) Format(f fmt.State, verb rune) {
	fmt.Fprint(f, redactedKey)
}

// MarshalJSON never emits key bytes.
func (k *derivedKey) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redactedKey + `"`), nil
}
