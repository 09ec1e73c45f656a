package cryptor

import (
	"encoding/base64"
	"encoding/json"

	"github.com/lazervel/cryptor/errors"
)

// Envelope is the self-describing unit produced by one encryption: the IV,
// the ciphertext, the cipher name that produced it, and the authentication
// tag (empty for non-AEAD ciphers). Decryption needs no out-of-band cipher
// negotiation. Envelopes are immutable values and carry no reference back
// to the codec that produced them.
type Envelope struct {
	IV     []byte
	Value  []byte
	Cipher string
	Tag    []byte
}

// envelopeRecord is the JSON shape of an envelope. Byte fields are std
// base64 text. Field order is part of the wire format: iv, value, cipher,
// tag.
type envelopeRecord struct {
	IV     string `json:"iv"`
	Value  string `json:"value"`
	Cipher string `json:"cipher"`
	Tag    string `json:"tag"`
}

// Encode serializes the envelope to its transportable form:
// base64(JSON{iv, value, cipher, tag}) with each byte field independently
// base64-encoded. The double encoding yields a single opaque, URL and
// database safe token that is still inspectable once unwrapped.
func (e *Envelope) Encode() string {
	rec := envelopeRecord{
		IV:     base64.StdEncoding.EncodeToString(e.IV),
		Value:  base64.StdEncoding.EncodeToString(e.Value),
		Cipher: e.Cipher,
		Tag:    base64.StdEncoding.EncodeToString(e.Tag),
	}
	// Marshal of a flat string struct cannot fail.
	data, _ := json.Marshal(rec)
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeEnvelope parses an encoded envelope. Inputs that are not valid
// base64, not valid JSON, or missing any of iv, value, or cipher fail with
// a MalformedEnvelope error. An absent tag decodes to empty bytes, which
// supports non-AEAD ciphers.
func DecodeEnvelope(text string) (*Envelope, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.MalformedEnvelope("not valid base64").WithCause(err)
	}

	var rec struct {
		IV     *string `json:"iv"`
		Value  *string `json:"value"`
		Cipher *string `json:"cipher"`
		Tag    *string `json:"tag"`
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.MalformedEnvelope("not valid JSON").WithCause(err)
	}

	switch {
	case rec.IV == nil:
		return nil, errors.MalformedEnvelope("missing field").WithDetail("field", "iv")
	case rec.Value == nil:
		return nil, errors.MalformedEnvelope("missing field").WithDetail("field", "value")
	case rec.Cipher == nil:
		return nil, errors.MalformedEnvelope("missing field").WithDetail("field", "cipher")
	}

	iv, err := base64.StdEncoding.DecodeString(*rec.IV)
	if err != nil {
		return nil, errors.MalformedEnvelope("iv is not valid base64").WithCause(err)
	}
	value, err := base64.StdEncoding.DecodeString(*rec.Value)
	if err != nil {
		return nil, errors.MalformedEnvelope("value is not valid base64").WithCause(err)
	}
	var tag []byte
	if rec.Tag != nil {
		tag, err = base64.StdEncoding.DecodeString(*rec.Tag)
		if err != nil {
			return nil, errors.MalformedEnvelope("tag is not valid base64").WithCause(err)
		}
	}

	return &Envelope{IV: iv, Value: value, Cipher: *rec.Cipher, Tag: tag}, nil
}

// AppearsEncrypted reports whether text has the structure of an encoded
// envelope: outer base64 wrapping a JSON record with the required fields.
// It performs no authentication and no key operations.
func AppearsEncrypted(text string) bool {
	env, err := DecodeEnvelope(text)
	return err == nil && env.Cipher != ""
}
