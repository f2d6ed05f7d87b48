package crypto

import (
	"encoding/base64"
)

// ToBase64 encodes bytes to standard base64 with padding. Envelope parts
// and the outer transport string use this encoding.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64, tolerating missing padding.
func FromBase64URL(s string) ([]byte, error) {
	if m := len(s) % 4; m != 0 {
		s += "===="[m:]
	}
	return base64.URLEncoding.DecodeString(s)
}

// DecodeBase64 decodes base64 in any common variant. Transport strings
// produced by other implementations of the envelope format sometimes
// arrive URL-safe encoded, so the decoder tries each alphabet in turn.
func DecodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.RawStdEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	data, err = base64.RawURLEncoding.DecodeString(s)
	if err == nil {
		return data, nil
	}

	return base64.URLEncoding.DecodeString(s)
}
