package crypto

import (
	"crypto/rsa"
	"fmt"
	"strings"
)

// Seal encrypts plaintext into a transport envelope string:
//
//	base64( base64(wrap(key)) ":" base64(wrap(iv)) ":" base64(cbc(plaintext)) )
//
// A fresh 32-byte key and 16-byte IV are drawn per call, so sealing the
// same plaintext twice never yields the same envelope.
//
// The OAEP step operates on the base64 text of the key material, not the
// raw bytes. Existing envelopes were produced with this double encoding;
// collapsing it to a single encoding breaks round-trips with them.
func Seal(plaintext []byte, pub *rsa.PublicKey) (string, error) {
	key, err := RandomBytes(SymmetricKeySize)
	if err != nil {
		return "", err
	}

	iv, err := RandomBytes(IVSize)
	if err != nil {
		return "", err
	}

	ciphertext, err := EncryptCBC(key, iv, plaintext)
	if err != nil {
		return "", err
	}

	wrappedKey, err := WrapOAEP(pub, []byte(ToBase64(key)))
	if err != nil {
		return "", err
	}

	wrappedIV, err := WrapOAEP(pub, []byte(ToBase64(iv)))
	if err != nil {
		return "", err
	}

	combined := strings.Join([]string{
		ToBase64(wrappedKey),
		ToBase64(wrappedIV),
		ToBase64(ciphertext),
	}, PartDelimiter)

	return ToBase64([]byte(combined)), nil
}

// Open reverses Seal: decodes the transport string, unwraps the key and
// IV under the private key, and decrypts the ciphertext. The plaintext is
// returned raw; payload parsing is the caller's concern.
func Open(transport string, priv *rsa.PrivateKey) ([]byte, error) {
	raw, err := DecodeBase64(strings.TrimSpace(transport))
	if err != nil {
		return nil, fmt.Errorf("%w: transport is not base64", ErrEnvelopeFormat)
	}

	parts := strings.Split(string(raw), PartDelimiter)
	if len(parts) != EnvelopeParts {
		return nil, fmt.Errorf("%w: got %d parts, want %d", ErrEnvelopeFormat, len(parts), EnvelopeParts)
	}

	wrappedKey, err := FromBase64(parts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key is not base64", ErrEnvelopeFormat)
	}

	wrappedIV, err := FromBase64(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped IV is not base64", ErrEnvelopeFormat)
	}

	ciphertext, err := FromBase64(parts[2])
	if err != nil {
		return nil, fmt.Errorf("%w: ciphertext is not base64", ErrEnvelopeFormat)
	}

	keyText, err := UnwrapOAEP(priv, wrappedKey)
	if err != nil {
		return nil, err
	}

	key, err := FromBase64(string(keyText))
	if err != nil {
		return nil, fmt.Errorf("%w: unwrapped key is not base64", ErrEnvelopeFormat)
	}

	ivText, err := UnwrapOAEP(priv, wrappedIV)
	if err != nil {
		return nil, err
	}

	iv, err := FromBase64(string(ivText))
	if err != nil {
		return nil, fmt.Errorf("%w: unwrapped IV is not base64", ErrEnvelopeFormat)
	}

	return DecryptCBC(key, iv, ciphertext)
}
