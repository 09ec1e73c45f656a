package cryptor

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"sort"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/lazervel/cryptor/errors"
)

// Cipher name constants. Names travel inside envelopes, so they are part of
// the wire format.
const (
	// CipherAES256GCM is AES-256-GCM, the default.
	CipherAES256GCM = "aes-256-gcm"
	// CipherAES128GCM is AES-128-GCM.
	CipherAES128GCM = "aes-128-gcm"
	// CipherAES256CBC is AES-256-CBC with PKCS#7 padding. Not authenticated:
	// envelopes carry no tag and AAD is silently ignored.
	CipherAES256CBC = "aes-256-cbc"
	// CipherChaCha20Poly1305 is ChaCha20-Poly1305, fast on CPUs without AES-NI.
	CipherChaCha20Poly1305 = "chacha20-poly1305"
)

// suite describes one supported cipher: key and IV lengths and whether the
// transform authenticates (produces a tag and binds AAD).
type suite struct {
	name    string
	keySize int
	ivSize  int
	aead    bool
}

var suites = map[string]suite{
	CipherAES256GCM:        {name: CipherAES256GCM, keySize: 32, ivSize: 12, aead: true},
	CipherAES128GCM:        {name: CipherAES128GCM, keySize: 16, ivSize: 12, aead: true},
	CipherAES256CBC:        {name: CipherAES256CBC, keySize: 32, ivSize: aes.BlockSize, aead: false},
	CipherChaCha20Poly1305: {name: CipherChaCha20Poly1305, keySize: 32, ivSize: chacha20poly1305.NonceSize, aead: true},
}

// SupportedCiphers returns the names of all supported ciphers, sorted.
func SupportedCiphers() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupSuite resolves a cipher name, rejecting unknown names and suites
// reporting a non-positive IV length.
func lookupSuite(name string) (suite, error) {
	s, ok := suites[name]
	if !ok || s.ivSize <= 0 {
		return suite{}, errors.UnsupportedCipher(name)
	}
	return s, nil
}

func (s suite) aeadCipher(key []byte) (cipher.AEAD, error) {
	if s.name == CipherChaCha20Poly1305 {
		return chacha20poly1305.New(key)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// seal encrypts plaintext under (key, iv, aad) and returns ciphertext and
// tag separately. Non-AEAD suites return an empty tag and ignore aad.
func (s suite) seal(key, iv, plaintext, aad []byte) (ciphertext, tag []byte, err error) {
	if !s.aead {
		ct, err := s.sealCBC(key, iv, plaintext)
		return ct, nil, err
	}

	aead, err := s.aeadCipher(key)
	if err != nil {
		return nil, nil, err
	}
	sealed := aead.Seal(nil, iv, plaintext, aad)
	split := len(sealed) - aead.Overhead()
	return sealed[:split], sealed[split:], nil
}

// open verifies and decrypts ciphertext. The tag is checked against
// (key, iv, ciphertext, aad) before any plaintext is released.
func (s suite) open(key, iv, ciphertext, tag, aad []byte) ([]byte, error) {
	if !s.aead {
		return s.openCBC(key, iv, ciphertext)
	}

	aead, err := s.aeadCipher(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)
	return aead.Open(nil, iv, sealed, aad)
}

func (s suite) sealCBC(key, iv, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	padded := pkcs7Pad(plaintext, block.BlockSize())
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

func (s suite) openCBC(key, iv, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return pkcs7Unpad(plaintext, block.BlockSize())
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty padded data")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("invalid padding")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return data[:len(data)-padLen], nil
}
