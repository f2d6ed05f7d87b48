package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
)

// randReader is the random source used for key material and OAEP blinding.
// It defaults to nil (which uses crypto/rand) but can be overridden for testing.
var randReader io.Reader

func secureRand() io.Reader {
	if randReader != nil {
		return randReader
	}
	return rand.Reader
}

// RandomBytes returns n bytes from the secure random source.
func RandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(secureRand(), buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}

// KeyPair holds a PEM-encoded RSA keypair. The envelope core never
// generates or stores caller keys; this type exists for the CLI keygen
// command and for tests.
type KeyPair struct {
	// PublicKeyPEM is the PKIX "PUBLIC KEY" block.
	PublicKeyPEM string
	// PrivateKeyPEM is the PKCS#1 "RSA PRIVATE KEY" block.
	PrivateKeyPEM string
}

// GenerateKeyPair creates a new RSA keypair of the given modulus size.
// Moduli below MinRSABits are rejected: they cannot reliably wrap the
// envelope's key material.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	if bits < MinRSABits {
		return nil, fmt.Errorf("%w: %d bits, want at least %d", ErrKeyTooSmall, bits, MinRSABits)
	}

	priv, err := rsa.GenerateKey(secureRand(), bits)
	if err != nil {
		return nil, fmt.Errorf("generate RSA key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("marshal public key: %w", err)
	}

	return &KeyPair{
		PublicKeyPEM: string(pem.EncodeToMemory(&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: pubDER,
		})),
		PrivateKeyPEM: string(pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(priv),
		})),
	}, nil
}
