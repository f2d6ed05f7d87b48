package envseal

import (
	"errors"
	"fmt"

	"github.com/envseal/envseal-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrKeyMissing is returned when no key material is provided.
	ErrKeyMissing = errors.New("key is required")

	// ErrKeyParse is returned when key material cannot be parsed as an
	// RSA key.
	ErrKeyParse = errors.New("cannot parse key")

	// ErrEnvelopeFormat is returned when an envelope does not decode to
	// exactly three base64 parts.
	ErrEnvelopeFormat = errors.New("invalid envelope format")

	// ErrWrapFailed is returned when the asymmetric wrap step fails,
	// for example when the modulus is too short for the key material.
	ErrWrapFailed = errors.New("key wrap failed")

	// ErrUnwrapFailed is returned when the asymmetric unwrap step fails.
	// Decrypting with the wrong private key surfaces here.
	ErrUnwrapFailed = errors.New("key unwrap failed")

	// ErrCipherFailed is returned when symmetric decryption fails its
	// padding or length checks. This usually means a wrong key or a
	// corrupted ciphertext.
	ErrCipherFailed = errors.New("symmetric decryption failed")

	// ErrPayloadParse is returned when the decrypted bytes are not valid
	// JSON, or when a payload cannot be serialized for encryption.
	ErrPayloadParse = errors.New("invalid payload")

	// ErrTokenFormat is returned by ParseToken when the input does not
	// have exactly three dot-joined segments.
	ErrTokenFormat = errors.New("invalid token format")

	// ErrTokenDecode is returned by ParseToken when a segment is not
	// valid base64url or does not hold valid JSON.
	ErrTokenDecode = errors.New("cannot decode token")
)

// EnvSealError is implemented by all library errors.
type EnvSealError interface {
	error
	EnvSealError() // marker method
}

// KeyRole identifies which half of the keypair an error refers to.
type KeyRole string

const (
	// KeyRolePublic marks errors about the wrapping (public) key.
	KeyRolePublic KeyRole = "public"
	// KeyRolePrivate marks errors about the unwrapping (private) key.
	KeyRolePrivate KeyRole = "private"
)

// KeyError reports missing or unparseable key material. The message never
// contains the key text itself.
type KeyError struct {
	Role KeyRole
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s key: %v", e.Role, e.Err)
}

// Unwrap returns the underlying error.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyError) Is(target error) bool {
	switch target {
	case ErrKeyMissing:
		return errors.Is(e.Err, ErrKeyMissing)
	case ErrKeyParse:
		return !errors.Is(e.Err, ErrKeyMissing)
	}
	return false
}

// EnvSealError implements the EnvSealError interface.
func (e *KeyError) EnvSealError() {}

// EnvelopeFormatError reports a transport string that is structurally not
// an envelope: bad base64 or the wrong number of colon-separated parts.
type EnvelopeFormatError struct {
	Err error
}

func (e *EnvelopeFormatError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *EnvelopeFormatError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *EnvelopeFormatError) Is(target error) bool {
	return target == ErrEnvelopeFormat
}

// EnvSealError implements the EnvSealError interface.
func (e *EnvelopeFormatError) EnvSealError() {}

// WrapError reports a failure in the asymmetric encryption of the key
// material.
type WrapError struct {
	Err error
}

func (e *WrapError) Error() string {
	return fmt.Sprintf("wrap key material: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *WrapError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *WrapError) Is(target error) bool {
	return target == ErrWrapFailed
}

// EnvSealError implements the EnvSealError interface.
func (e *WrapError) EnvSealError() {}

// UnwrapError reports a failure in the asymmetric decryption of the key
// material. The wrong-key case is indistinguishable from corruption at
// this layer; both reject in OAEP padding verification.
type UnwrapError struct {
	Err error
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("unwrap key material (wrong key or corrupted envelope): %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *UnwrapError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *UnwrapError) Is(target error) bool {
	return target == ErrUnwrapFailed
}

// EnvSealError implements the EnvSealError interface.
func (e *UnwrapError) EnvSealError() {}

// CipherError reports a block-cipher failure during decryption: bad
// ciphertext length or a PKCS#7 padding check failure.
type CipherError struct {
	Err error
}

func (e *CipherError) Error() string {
	return fmt.Sprintf("symmetric decrypt (wrong key or corrupted data): %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *CipherError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *CipherError) Is(target error) bool {
	return target == ErrCipherFailed
}

// EnvSealError implements the EnvSealError interface.
func (e *CipherError) EnvSealError() {}

// PayloadError reports payload serialization problems: a value that cannot
// be JSON-encoded on encrypt, or decrypted bytes that are not JSON.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *PayloadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *PayloadError) Is(target error) bool {
	return target == ErrPayloadParse
}

// EnvSealError implements the EnvSealError interface.
func (e *PayloadError) EnvSealError() {}

// wrapError converts internal crypto errors to public errors. This ensures
// that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, crypto.ErrUnwrapFailed):
		return &UnwrapError{Err: err}
	case errors.Is(err, crypto.ErrWrapFailed):
		return &WrapError{Err: err}
	case errors.Is(err, crypto.ErrEnvelopeFormat):
		return &EnvelopeFormatError{Err: err}
	case errors.Is(err, crypto.ErrInvalidPadding),
		errors.Is(err, crypto.ErrCiphertextLength),
		errors.Is(err, crypto.ErrInvalidKeySize),
		errors.Is(err, crypto.ErrInvalidIVSize):
		return &CipherError{Err: err}
	}

	return err
}
