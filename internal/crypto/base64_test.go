package crypto

import (
	"bytes"
	"testing"
)

func TestBase64RoundTrip(t *testing.T) {
	data := []byte{0x00, 0x01, 0xfe, 0xff, 'a', 'b'}

	decoded, err := FromBase64(ToBase64(data))
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("decoded = %v, want %v", decoded, data)
	}

	decoded, err = FromBase64URL(ToBase64URL(data))
	if err != nil {
		t.Fatalf("FromBase64URL() error = %v", err)
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("decoded = %v, want %v", decoded, data)
	}
}

func TestFromBase64URL_RepairsPadding(t *testing.T) {
	// "ab" encodes to "YWI=" padded, "YWI" unpadded.
	for _, s := range []string{"YWI", "YWI="} {
		decoded, err := FromBase64URL(s)
		if err != nil {
			t.Fatalf("FromBase64URL(%q) error = %v", s, err)
		}
		if string(decoded) != "ab" {
			t.Errorf("FromBase64URL(%q) = %q, want %q", s, decoded, "ab")
		}
	}
}

func TestDecodeBase64_Variants(t *testing.T) {
	// 0xfb 0xef exercises characters that differ between the standard
	// ("+", "/") and URL-safe ("-", "_") alphabets.
	data := []byte{0xfb, 0xef, 0xbe}

	tests := []struct {
		name  string
		input string
	}{
		{"standard padded", ToBase64(data)},
		{"url-safe unpadded", ToBase64URL(data)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64(tt.input)
			if err != nil {
				t.Fatalf("DecodeBase64(%q) error = %v", tt.input, err)
			}
			if !bytes.Equal(decoded, data) {
				t.Errorf("decoded = %v, want %v", decoded, data)
			}
		})
	}
}

func TestDecodeBase64_Invalid(t *testing.T) {
	if _, err := DecodeBase64("!!! definitely not base64 !!!"); err == nil {
		t.Error("expected error for invalid input")
	}
}

func TestBase64AlphabetExcludesDelimiter(t *testing.T) {
	// The envelope relies on ':' never appearing in encoded parts.
	var all []byte
	for i := 0; i < 256; i++ {
		all = append(all, byte(i))
	}
	if encoded := ToBase64(all); bytes.ContainsRune([]byte(encoded), ':') {
		t.Error("standard base64 output contains the part delimiter")
	}
}
