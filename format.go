package tuid

import "fmt"

// Format selects one of the fixed-width text encodings. The set is closed:
// every tag maps one-to-one onto a codec.
type Format uint8

const (
	// FormatBase58 is the canonical 18-character form.
	FormatBase58 Format = iota
	// FormatBase32 is the 22-character Crockford form.
	FormatBase32
	// FormatHex is the 27-character lower-case hexadecimal form.
	FormatHex
	// FormatHexUpper is the 27-character upper-case hexadecimal form.
	FormatHexUpper
	// FormatBase64 is the 24-character standard Base64 form.
	FormatBase64
)

// String returns the stable name of the format.
func (f Format) String() string {
	switch f {
	case FormatBase58:
		return "base58"
	case FormatBase32:
		return "base32"
	case FormatHex:
		return "hex"
	case FormatHexUpper:
		return "hex-upper"
	case FormatBase64:
		return "base64"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// FormatByName returns a format by its stable name.
//
// This is the inverse of Format.String and is meant for callers that carry
// the format tag in configuration or headers.
func FormatByName(name string) (Format, bool) {
	switch name {
	case "base58":
		return FormatBase58, true
	case "base32":
		return FormatBase32, true
	case "hex":
		return FormatHex, true
	case "hex-upper":
		return FormatHexUpper, true
	case "base64":
		return FormatBase64, true
	default:
		return 0, false
	}
}

// Encode renders the identifier in the given format. An unknown tag fails
// with ErrUnsupportedFormat.
func (id ID) Encode(f Format) (string, error) {
	switch f {
	case FormatBase58:
		return id.Base58(), nil
	case FormatBase32:
		return id.Base32(), nil
	case FormatHex:
		return id.Hex(), nil
	case FormatHexUpper:
		return id.HexUpper(), nil
	case FormatBase64:
		return id.Base64(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
}

// Parse decodes any of the four text encodings, auto-detected by exact
// length: 18 is Base58, 22 is Base32, 24 is Base64 and 27 is hex. Any
// other length fails with ErrInvalidFormat before a codec runs.
func Parse(s string) (ID, error) {
	switch len(s) {
	case EncodedLenBase58:
		return ParseBase58(s)
	case EncodedLenBase32:
		return ParseBase32(s)
	case EncodedLenBase64:
		return ParseBase64(s)
	case EncodedLenHex:
		return ParseHex(s)
	default:
		return Nil, fmt.Errorf("%w: no encoding is %d characters", ErrInvalidFormat, len(s))
	}
}

// MustParse is like Parse but panics on error. Use for hard-coded inputs.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
