package envseal

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/envseal/envseal-go/internal/crypto"
)

func TestKeyError_SentinelMatching(t *testing.T) {
	missing := &KeyError{Role: KeyRolePublic, Err: ErrKeyMissing}
	assert.ErrorIs(t, missing, ErrKeyMissing)
	assert.NotErrorIs(t, missing, ErrKeyParse)

	parse := &KeyError{Role: KeyRolePrivate, Err: crypto.ErrKeyParse}
	assert.ErrorIs(t, parse, ErrKeyParse)
	assert.NotErrorIs(t, parse, ErrKeyMissing)
	assert.Contains(t, parse.Error(), "private key")
}

func TestTypedErrors_AreDistinguishable(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"envelope format", &EnvelopeFormatError{Err: cause}, ErrEnvelopeFormat},
		{"wrap", &WrapError{Err: cause}, ErrWrapFailed},
		{"unwrap", &UnwrapError{Err: cause}, ErrUnwrapFailed},
		{"cipher", &CipherError{Err: cause}, ErrCipherFailed},
		{"payload", &PayloadError{Err: cause}, ErrPayloadParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, cause, "cause must stay reachable via Unwrap")

			// Each kind matches only its own sentinel.
			for _, other := range tests {
				if other.want != tt.want {
					assert.NotErrorIs(t, tt.err, other.want)
				}
			}

			var marker EnvSealError
			assert.ErrorAs(t, tt.err, &marker)
		})
	}
}

func TestWrapError_MapsInternalSentinels(t *testing.T) {
	tests := []struct {
		name     string
		internal error
		want     error
	}{
		{"unwrap failure", fmt.Errorf("%w: oaep", crypto.ErrUnwrapFailed), ErrUnwrapFailed},
		{"wrap failure", fmt.Errorf("%w: too long", crypto.ErrWrapFailed), ErrWrapFailed},
		{"format failure", fmt.Errorf("%w: 2 parts", crypto.ErrEnvelopeFormat), ErrEnvelopeFormat},
		{"padding failure", fmt.Errorf("cbc: %w", crypto.ErrInvalidPadding), ErrCipherFailed},
		{"length failure", fmt.Errorf("cbc: %w", crypto.ErrCiphertextLength), ErrCipherFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, wrapError(tt.internal), tt.want)
		})
	}

	assert.NoError(t, wrapError(nil))
}

func TestErrorMessages_DistinguishWrongKeyFromCorruption(t *testing.T) {
	unwrapErr := &UnwrapError{Err: crypto.ErrUnwrapFailed}
	require.Contains(t, unwrapErr.Error(), "wrong key")

	cipherErr := &CipherError{Err: crypto.ErrInvalidPadding}
	require.Contains(t, cipherErr.Error(), "corrupted data")

	formatErr := &EnvelopeFormatError{Err: crypto.ErrEnvelopeFormat}
	assert.False(t, strings.Contains(formatErr.Error(), "wrong key"))
}
