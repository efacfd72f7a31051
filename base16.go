package tuid

import (
	"fmt"

	"github.com/hupe1980/tuid/internal/uint128"
)

// EncodedLenHex is the fixed hexadecimal text width:
// ceil(106/4) = 27 characters.
const EncodedLenHex = 27

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// hexDec maps an input byte to its nibble value, or 0xFF. Decoding
// accepts mixed case.
var hexDec [256]byte

func init() {
	for i := range hexDec {
		hexDec[i] = 0xFF
	}
	for i := 0; i < 16; i++ {
		hexDec[hexLower[i]] = byte(i)
		hexDec[hexUpper[i]] = byte(i)
	}
}

// Hex returns the fixed 27-character lower-case hexadecimal encoding,
// most-significant nibble first, zero-padded on the left.
func (id ID) Hex() string {
	return id.appendHex(hexLower)
}

// HexUpper returns the fixed 27-character upper-case hexadecimal encoding.
func (id ID) HexUpper() string {
	return id.appendHex(hexUpper)
}

func (id ID) appendHex(table string) string {
	var buf [EncodedLenHex]byte
	n := id.n
	for i := EncodedLenHex - 1; i >= 0; i-- {
		buf[i] = table[n.Lo&0xF]
		n = n.Shr(4)
	}
	return string(buf[:])
}

// ParseHex decodes a fixed 27-character hexadecimal string of either or
// mixed case.
func ParseHex(s string) (ID, error) {
	if len(s) != EncodedLenHex {
		return Nil, fmt.Errorf("%w: hex form must be %d characters, got %d", ErrInvalidFormat, EncodedLenHex, len(s))
	}

	var n uint128.Uint128
	for i := 0; i < EncodedLenHex; i++ {
		d := hexDec[s[i]]
		if d == 0xFF {
			return Nil, fmt.Errorf("%w: invalid hex character %q", ErrInvalidFormat, s[i])
		}
		n = n.Shl(4)
		n.Lo |= uint64(d)
	}

	// 27 nibbles carry 108 raw bits; the top 2 map onto reserved bits.
	if n.Hi > maxHi {
		return Nil, fmt.Errorf("%w: hex value exceeds %d bits", ErrInvalidFormat, ValueBits)
	}
	return ID{n: n}, nil
}
