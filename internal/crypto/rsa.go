package crypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"

	"golang.org/x/crypto/ssh"
)

// ParsePublicKey parses a caller-supplied RSA public key. PKIX ("PUBLIC
// KEY") and PKCS#1 ("RSA PUBLIC KEY") PEM blocks are accepted, as is the
// OpenSSH authorized_keys line format. Surrounding whitespace is trimmed
// before parsing.
func ParsePublicKey(keyText string) (*rsa.PublicKey, error) {
	keyText = strings.TrimSpace(keyText)

	block, _ := pem.Decode([]byte(keyText))
	if block == nil {
		// Keys pasted from ~/.ssh are a common caller mistake worth absorbing.
		if pub, err := parseSSHPublicKey(keyText); err == nil {
			return pub, nil
		}
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyParse)
	}

	if pub, err := x509.ParsePKIXPublicKey(block.Bytes); err == nil {
		rsaPub, ok := pub.(*rsa.PublicKey)
		if !ok {
			return nil, ErrNotRSAKey
		}
		return rsaPub, nil
	}

	rsaPub, err := x509.ParsePKCS1PublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}
	return rsaPub, nil
}

func parseSSHPublicKey(keyText string) (*rsa.PublicKey, error) {
	pub, _, _, _, err := ssh.ParseAuthorizedKey([]byte(keyText))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	cryptoPub, ok := pub.(ssh.CryptoPublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}

	rsaPub, ok := cryptoPub.CryptoPublicKey().(*rsa.PublicKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return rsaPub, nil
}

// ParsePrivateKey parses a caller-supplied RSA private key. PKCS#1 ("RSA
// PRIVATE KEY"), PKCS#8 ("PRIVATE KEY") and OpenSSH PEM blocks are
// accepted. Surrounding whitespace is trimmed before parsing.
func ParsePrivateKey(keyText string) (*rsa.PrivateKey, error) {
	keyText = strings.TrimSpace(keyText)

	block, _ := pem.Decode([]byte(keyText))
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyParse)
	}

	if block.Type == "OPENSSH PRIVATE KEY" {
		key, err := ssh.ParseRawPrivateKey([]byte(keyText))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, ErrNotRSAKey
		}
		return rsaKey, nil
	}

	if key, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		return key, nil
	}

	keyAny, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyParse, err)
	}

	rsaKey, ok := keyAny.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return rsaKey, nil
}

// WrapOAEP encrypts small key material under the public key using
// RSA-OAEP with SHA-256. The payload here is always the base64 text of a
// 32-byte key or 16-byte IV, which fits any modulus of MinRSABits or more.
func WrapOAEP(pub *rsa.PublicKey, data []byte) ([]byte, error) {
	out, err := rsa.EncryptOAEP(sha256.New(), secureRand(), pub, data, nil)
	if err != nil {
		// Covers rsa.ErrMessageTooLong for undersized moduli.
		return nil, fmt.Errorf("%w: %v", ErrWrapFailed, err)
	}
	return out, nil
}

// UnwrapOAEP decrypts OAEP-wrapped key material under the private key.
// A wrong key fails here: OAEP padding verification rejects the result.
func UnwrapOAEP(priv *rsa.PrivateKey, data []byte) ([]byte, error) {
	out, err := rsa.DecryptOAEP(sha256.New(), secureRand(), priv, data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnwrapFailed, err)
	}
	return out, nil
}
