package cryptor

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/lazervel/cryptor/errors"
)

func TestSupportedCiphers(t *testing.T) {
	names := SupportedCiphers()
	want := []string{CipherAES128GCM, CipherAES256CBC, CipherAES256GCM, CipherChaCha20Poly1305}

	if len(names) != len(want) {
		t.Fatalf("expected %d ciphers, got %v", len(want), names)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("expected %s at %d, got %s", name, i, names[i])
		}
	}
}

func TestLookupSuite(t *testing.T) {
	tests := []struct {
		name    string
		keySize int
		ivSize  int
		aead    bool
	}{
		{CipherAES256GCM, 32, 12, true},
		{CipherAES128GCM, 16, 12, true},
		{CipherAES256CBC, 32, 16, false},
		{CipherChaCha20Poly1305, 32, 12, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := lookupSuite(tc.name)
			if err != nil {
				t.Fatalf("lookupSuite failed: %v", err)
			}
			if s.keySize != tc.keySize || s.ivSize != tc.ivSize || s.aead != tc.aead {
				t.Errorf("unexpected suite: %+v", s)
			}
		})
	}
}

func TestLookupSuiteUnknown(t *testing.T) {
	for _, name := range []string{"", "rot13", "aes-512-gcm", "AES-256-GCM"} {
		if _, err := lookupSuite(name); !errors.IsCode(err, errors.ErrCodeUnsupportedCipher) {
			t.Errorf("expected UNSUPPORTED_CIPHER for %q, got %v", name, err)
		}
	}
}

func TestSealProducesSeparateTag(t *testing.T) {
	key := sha256.Sum256([]byte("k"))
	iv := make([]byte, 12)

	for _, name := range []string{CipherAES256GCM, CipherChaCha20Poly1305} {
		t.Run(name, func(t *testing.T) {
			s, _ := lookupSuite(name)
			ct, tag, err := s.seal(key[:s.keySize], iv, []byte("hello"), nil)
			if err != nil {
				t.Fatalf("seal failed: %v", err)
			}
			if len(ct) != len("hello") {
				t.Errorf("ciphertext length %d should match plaintext length", len(ct))
			}
			if len(tag) != 16 {
				t.Errorf("expected 16-byte tag, got %d", len(tag))
			}

			pt, err := s.open(key[:s.keySize], iv, ct, tag, nil)
			if err != nil {
				t.Fatalf("open failed: %v", err)
			}
			if string(pt) != "hello" {
				t.Errorf("unexpected plaintext: %q", pt)
			}
		})
	}
}

func TestSealCBCEmptyTag(t *testing.T) {
	key := sha256.Sum256([]byte("k"))
	iv := make([]byte, 16)
	s, _ := lookupSuite(CipherAES256CBC)

	ct, tag, err := s.seal(key[:], iv, []byte("hello"), nil)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	if len(tag) != 0 {
		t.Errorf("CBC must not produce a tag, got %d bytes", len(tag))
	}
	if len(ct)%16 != 0 {
		t.Errorf("CBC ciphertext must be block-aligned, got %d", len(ct))
	}

	pt, err := s.open(key[:], iv, ct, nil, nil)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	if string(pt) != "hello" {
		t.Errorf("unexpected plaintext: %q", pt)
	}
}

func TestOpenCBCRejectsPartialBlocks(t *testing.T) {
	key := sha256.Sum256([]byte("k"))
	iv := make([]byte, 16)
	s, _ := lookupSuite(CipherAES256CBC)

	for _, n := range []int{0, 1, 15, 17} {
		if _, err := s.open(key[:], iv, make([]byte, n), nil, nil); err == nil {
			t.Errorf("expected error for %d-byte ciphertext", n)
		}
	}
}

func TestPKCS7RoundTrip(t *testing.T) {
	for length := 0; length <= 48; length++ {
		data := bytes.Repeat([]byte{0x41}, length)
		padded := pkcs7Pad(data, 16)

		if len(padded)%16 != 0 {
			t.Fatalf("padded length %d is not block-aligned", len(padded))
		}
		if len(padded) == len(data) {
			t.Fatal("padding must always add at least one byte")
		}

		unpadded, err := pkcs7Unpad(padded, 16)
		if err != nil {
			t.Fatalf("unpad failed for length %d: %v", length, err)
		}
		if !bytes.Equal(unpadded, data) {
			t.Fatalf("round trip mismatch for length %d", length)
		}
	}
}

func TestPKCS7UnpadInvalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"zero pad byte", append(bytes.Repeat([]byte{0}, 15), 0)},
		{"pad larger than block", append(bytes.Repeat([]byte{0}, 15), 17)},
		{"inconsistent padding", []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 2, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := pkcs7Unpad(tc.data, 16); err == nil {
				t.Error("expected unpad error")
			}
		})
	}
}
