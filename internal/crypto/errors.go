package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidIVSize is returned when the IV size is invalid.
	ErrInvalidIVSize = errors.New("invalid IV size")

	// ErrInvalidPadding is returned when PKCS#7 unpadding fails during
	// CBC decryption. This typically indicates a wrong key or corrupted
	// ciphertext.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrCiphertextLength is returned when the ciphertext is empty or not
	// a multiple of the block size.
	ErrCiphertextLength = errors.New("invalid ciphertext length")

	// ErrKeyParse is returned when PEM key material cannot be parsed as
	// an RSA key.
	ErrKeyParse = errors.New("cannot parse key")

	// ErrNotRSAKey is returned when the key material parses but does not
	// contain an RSA key.
	ErrNotRSAKey = errors.New("not an RSA key")

	// ErrKeyTooSmall is returned when the RSA modulus is too short to
	// wrap the symmetric key material.
	ErrKeyTooSmall = errors.New("RSA key too small")

	// ErrWrapFailed is returned when the OAEP encryption step fails.
	ErrWrapFailed = errors.New("key wrap failed")

	// ErrUnwrapFailed is returned when the OAEP decryption step fails.
	// A wrong private key surfaces here.
	ErrUnwrapFailed = errors.New("key unwrap failed")

	// ErrEnvelopeFormat is returned when a transport string does not
	// decode to exactly three colon-separated base64 parts.
	ErrEnvelopeFormat = errors.New("invalid envelope format")
)
