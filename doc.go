// Package cryptor is a minimal authenticated-encryption helper. It derives
// a 32-byte key from an application secret with SHA-256, encrypts and
// decrypts byte strings under AES-GCM (or a configured cipher), and packs
// ciphertext with its IV, cipher name, and authentication tag into a
// transportable base64 envelope.
//
// Supported ciphers: aes-256-gcm (default), aes-128-gcm, chacha20-poly1305,
// and aes-256-cbc. AES-256-CBC is not authenticated: its envelopes carry no
// tag and AAD passed alongside it has no effect. This is a known limitation
// of the cipher, not enforced by the codec.
//
// The envelope wire format is bit-for-bit reproducible for interoperability:
// a JSON record {"iv", "value", "cipher", "tag"} with each byte field std
// base64-encoded, itself wrapped once more in std base64.
//
// # Usage
//
//	c, err := cryptor.New("my-secret-key")
//	envelope, err := c.Encrypt([]byte("Hello World!"), nil)
//	plaintext, err := c.Decrypt(envelope, nil)
//	defer c.Close()
//
// The derived key is held for the codec's lifetime, excluded from every
// textual and serialized representation, and wiped by Close.
package cryptor
