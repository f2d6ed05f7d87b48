package envseal

import (
	"encoding/json"
	"strings"

	"github.com/envseal/envseal-go/internal/crypto"
)

// EncryptEnvelope encrypts any JSON-serializable payload into a transport
// string under the recipient's RSA public key:
//
//	base64( base64(wrap(key)) ":" base64(wrap(iv)) ":" base64(cbc(payload_json)) )
//
// A fresh 256-bit key and 16-byte IV are generated per call, so two
// encryptions of the same payload never produce the same output. The
// envelope carries no integrity tag; tampering yields a decode failure or
// wrong plaintext on decrypt, not explicit detection.
//
// The key is used only for the duration of the call and is never logged
// or retained.
func EncryptEnvelope(payload any, publicKeyPEM string) (string, error) {
	keyText := strings.TrimSpace(publicKeyPEM)
	if keyText == "" {
		return "", &KeyError{Role: KeyRolePublic, Err: ErrKeyMissing}
	}

	pub, err := crypto.ParsePublicKey(keyText)
	if err != nil {
		return "", &KeyError{Role: KeyRolePublic, Err: err}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", &PayloadError{Err: err}
	}

	transport, err := crypto.Seal(data, pub)
	if err != nil {
		return "", wrapError(err)
	}

	return transport, nil
}

// DecryptEnvelope reverses EncryptEnvelope under the matching private key
// and returns the payload as decoded JSON (map[string]any, []any, or a
// scalar). For any envelope produced by EncryptEnvelope with the matching
// keypair the result equals the original payload's JSON value.
func DecryptEnvelope(envelope, privateKeyPEM string) (any, error) {
	var payload any
	if err := DecryptEnvelopeInto(envelope, privateKeyPEM, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// DecryptEnvelopeInto decrypts an envelope and unmarshals the payload into
// out, which must be a non-nil pointer.
//
// Failures are distinguishable via errors.Is: ErrKeyMissing, ErrKeyParse,
// ErrEnvelopeFormat (wrong part count or bad base64), ErrUnwrapFailed
// (wrong private key), ErrCipherFailed (padding failure: wrong key or
// corrupted ciphertext), ErrPayloadParse (plaintext is not valid JSON).
func DecryptEnvelopeInto(envelope, privateKeyPEM string, out any) error {
	keyText := strings.TrimSpace(privateKeyPEM)
	if keyText == "" {
		return &KeyError{Role: KeyRolePrivate, Err: ErrKeyMissing}
	}

	priv, err := crypto.ParsePrivateKey(keyText)
	if err != nil {
		return &KeyError{Role: KeyRolePrivate, Err: err}
	}

	plaintext, err := crypto.Open(envelope, priv)
	if err != nil {
		return wrapError(err)
	}

	if err := json.Unmarshal(plaintext, out); err != nil {
		return &PayloadError{Err: err}
	}

	return nil
}
