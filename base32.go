package tuid

import (
	"fmt"

	"github.com/hupe1980/tuid/internal/uint128"
)

// EncodedLenBase32 is the fixed Crockford Base32 text width:
// ceil(106/5) = 22 characters.
const EncodedLenBase32 = 22

// base32Alphabet is Crockford's Base32 alphabet. I, L, O and U are
// excluded by design; decoding maps them back per Crockford's aliases.
const base32Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// base32Dec maps an input byte to its symbol value, or 0xFF. Letters
// decode case-insensitively and the canonical aliases are honored:
// O/o -> 0, I/i/L/l -> 1.
var base32Dec [256]byte

func init() {
	for i := range base32Dec {
		base32Dec[i] = 0xFF
	}
	for i := 0; i < len(base32Alphabet); i++ {
		c := base32Alphabet[i]
		base32Dec[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			base32Dec[c+32] = byte(i)
		}
	}
	base32Dec['O'], base32Dec['o'] = 0, 0
	base32Dec['I'], base32Dec['i'] = 1, 1
	base32Dec['L'], base32Dec['l'] = 1, 1
}

// Base32 returns the fixed 22-character Crockford Base32 encoding,
// most-significant symbol first. Encoding is pure 5-bit extraction.
func (id ID) Base32() string {
	var buf [EncodedLenBase32]byte
	n := id.n
	for i := EncodedLenBase32 - 1; i >= 0; i-- {
		buf[i] = base32Alphabet[n.Lo&0x1F]
		n = n.Shr(5)
	}
	return string(buf[:])
}

// ParseBase32 decodes a fixed 22-character Crockford Base32 string.
// Decoding is case-insensitive and alias-tolerant.
func ParseBase32(s string) (ID, error) {
	if len(s) != EncodedLenBase32 {
		return Nil, fmt.Errorf("%w: base32 form must be %d characters, got %d", ErrInvalidFormat, EncodedLenBase32, len(s))
	}

	var n uint128.Uint128
	for i := 0; i < EncodedLenBase32; i++ {
		d := base32Dec[s[i]]
		if d == 0xFF {
			return Nil, fmt.Errorf("%w: invalid base32 character %q", ErrInvalidFormat, s[i])
		}
		n = n.Shl(5)
		n.Lo |= uint64(d)
	}

	// 22 symbols carry 110 raw bits; the top 4 map onto reserved bits.
	if n.Hi > maxHi {
		return Nil, fmt.Errorf("%w: base32 value exceeds %d bits", ErrInvalidFormat, ValueBits)
	}
	return ID{n: n}, nil
}
