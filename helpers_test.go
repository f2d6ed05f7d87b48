package envseal

import (
	"sync"
	"testing"

	"github.com/envseal/envseal-go/internal/crypto"
)

// RSA generation dominates test time, so all tests share one fixture pair
// plus an unrelated pair for wrong-key cases.
var (
	fixtureOnce  sync.Once
	fixtureErr   error
	fixturePair  *crypto.KeyPair
	unrelatedKey *crypto.KeyPair
)

func testKeyPair(t *testing.T) (publicPEM, privatePEM string) {
	t.Helper()

	fixtureOnce.Do(func() {
		fixturePair, fixtureErr = crypto.GenerateKeyPair(crypto.MinRSABits)
		if fixtureErr != nil {
			return
		}
		unrelatedKey, fixtureErr = crypto.GenerateKeyPair(crypto.MinRSABits)
	})
	if fixtureErr != nil {
		t.Fatalf("generate fixture keys: %v", fixtureErr)
	}

	return fixturePair.PublicKeyPEM, fixturePair.PrivateKeyPEM
}

func unrelatedPrivateKey(t *testing.T) string {
	t.Helper()
	testKeyPair(t)
	return unrelatedKey.PrivateKeyPEM
}
