// Package crypto implements the envelope encryption primitives: AES-256-CBC
// with PKCS#7 padding for the payload, RSA-OAEP (SHA-256) wrapping of the
// per-envelope key and IV, and the colon-delimited base64 transport framing.
//
// The scheme is hybrid but not authenticated: there is no MAC or AEAD tag,
// so tampering is detected only incidentally (padding or format failures).
// That weakness is part of the documented wire format and must not be fixed
// here without a format version bump.
//
// All functions are stateless and safe for concurrent use. Randomness comes
// from crypto/rand unless overridden via SetRandReaderForTesting.
package crypto
