package tuid

import (
	"encoding/base64"
	"fmt"
)

// EncodedLenBase64 is the fixed Base64 text width: the 16-byte big-endian
// form under standard Base64 with padding yields 24 characters.
//
// The byte-aligned variant is used (rather than packing 6 bits per symbol
// straight off the 106-bit value) so the output is decodable by any
// conventional Base64 tooling.
const EncodedLenBase64 = 24

// Base64 returns the fixed 24-character standard Base64 encoding of the
// 16-byte binary form, including padding.
func (id ID) Base64() string {
	var b [16]byte
	id.n.PutBytes(b[:])
	return base64.StdEncoding.EncodeToString(b[:])
}

// ParseBase64 decodes a fixed 24-character standard Base64 string.
// Non-canonical padding bits and characters outside the standard alphabet
// are rejected, as is any value with non-zero reserved bits.
func ParseBase64(s string) (ID, error) {
	if len(s) != EncodedLenBase64 {
		return Nil, fmt.Errorf("%w: base64 form must be %d characters, got %d", ErrInvalidFormat, EncodedLenBase64, len(s))
	}
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return FromBytes(b)
}
