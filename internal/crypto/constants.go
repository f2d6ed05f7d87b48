package crypto

const (
	// SymmetricKeySize is the size of the per-envelope AES-256 key in bytes.
	SymmetricKeySize = 32
	// IVSize is the size of the CBC initialization vector in bytes
	// (one AES block).
	IVSize = 16
	// BlockSize is the AES block size in bytes.
	BlockSize = 16

	// EnvelopeParts is the number of colon-separated parts in a decoded
	// envelope: wrapped key, wrapped IV, ciphertext.
	EnvelopeParts = 3
	// PartDelimiter joins the three envelope parts. The base64 alphabet
	// excludes ':', so the delimiter can never appear inside an encoded
	// part; any substitute encoding must preserve that property.
	PartDelimiter = ":"

	// MinRSABits is the smallest modulus the wrapping step supports.
	// OAEP with SHA-256 over the base64-encoded key text needs more
	// headroom than a 1024-bit modulus provides.
	MinRSABits = 2048
)

// AlgsCiphersuite is the canonical string representation of the envelope
// algorithm suite.
var AlgsCiphersuite = "RSA-OAEP-SHA-256:AES-256-CBC:PKCS7"
