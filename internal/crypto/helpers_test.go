package crypto

import (
	"crypto/rsa"
	"sync"
	"testing"
)

// RSA generation is slow enough that tests share two fixed keypairs.
var (
	keyOnce   sync.Once
	testPriv  *rsa.PrivateKey
	otherPriv *rsa.PrivateKey
	keyErr    error
)

func testKeys(t *testing.T) (*rsa.PrivateKey, *rsa.PrivateKey) {
	t.Helper()

	keyOnce.Do(func() {
		var pair, other *KeyPair
		pair, keyErr = GenerateKeyPair(MinRSABits)
		if keyErr != nil {
			return
		}
		testPriv, keyErr = ParsePrivateKey(pair.PrivateKeyPEM)
		if keyErr != nil {
			return
		}
		other, keyErr = GenerateKeyPair(MinRSABits)
		if keyErr != nil {
			return
		}
		otherPriv, keyErr = ParsePrivateKey(other.PrivateKeyPEM)
	})
	if keyErr != nil {
		t.Fatalf("generate test keys: %v", keyErr)
	}

	return testPriv, otherPriv
}
