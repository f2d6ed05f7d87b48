// Package envseal implements a hybrid encryption envelope and an
// unverified JWT codec.
//
// The envelope side encrypts any JSON-serializable payload under a fresh
// AES-256-CBC key, wraps the key and IV with RSA-OAEP under the
// recipient's public key, and serializes everything to one base64
// transport string. The token side parses three-segment JWTs for their
// header, claims and expiry metadata without verifying signatures, and
// constructs unsigned mock tokens for testing and display flows.
//
// Basic usage:
//
//	envelope, err := envseal.EncryptEnvelope(map[string]any{"a": 1}, publicKeyPEM)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	payload, err := envseal.DecryptEnvelope(envelope, privateKeyPEM)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	claims := envseal.DecodeToken(tokenString)
//	if claims == nil {
//	    // not a decodable token
//	}
//
// Limitations, by design: envelopes carry no integrity tag (plain CBC, no
// MAC), token signatures are never verified, and no key storage or
// rotation is provided. Keys are caller-supplied PEM text; the library
// neither caches nor logs them.
package envseal
