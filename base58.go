package tuid

import (
	"fmt"

	"github.com/hupe1980/tuid/internal/uint128"
)

// EncodedLenBase58 is the fixed Base58 text width.
//
// 18 characters cover every identifier generated before roughly year 8087;
// see the package documentation for the top-of-range caveat.
const EncodedLenBase58 = 18

// base58Alphabet is the conventional Bitcoin ordering. 0, O, I and l are
// excluded to reduce transcription errors.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// pow58x10 is 58^10, the largest power of 58 whose full digit block fits
// 64-bit arithmetic comfortably. Encoding and decoding split the value at
// this power so both halves stay within native machine words.
const pow58x10 = 430804206899405824

// base58Dec maps an input byte to its alphabet index, or 0xFF.
var base58Dec [256]byte

func init() {
	for i := range base58Dec {
		base58Dec[i] = 0xFF
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58Dec[base58Alphabet[i]] = byte(i)
	}
}

// Base58 returns the fixed 18-character Base58 encoding, most-significant
// symbol first. Leading zero magnitude is padded with '1' (index 0), so
// Nil encodes to "111111111111111111".
func (id ID) Base58() string {
	var buf [EncodedLenBase58]byte

	// Split into a high block of 8 digits and a low block of 10 so the
	// repeated division runs on uint64 instead of the full 128-bit word.
	q, lo := id.n.QuoRem64(pow58x10)
	hi := q.Lo // q < 2^48 for every 106-bit value, so q.Hi == 0

	for i := EncodedLenBase58 - 1; i >= 8; i-- {
		buf[i] = base58Alphabet[lo%58]
		lo /= 58
	}
	for i := 7; i >= 0; i-- {
		buf[i] = base58Alphabet[hi%58]
		hi /= 58
	}
	return string(buf[:])
}

// ParseBase58 decodes a fixed 18-character Base58 string.
func ParseBase58(s string) (ID, error) {
	if len(s) != EncodedLenBase58 {
		return Nil, fmt.Errorf("%w: base58 form must be %d characters, got %d", ErrInvalidFormat, EncodedLenBase58, len(s))
	}

	// Accumulate the two digit blocks in uint64, then recombine:
	// value = hi*58^10 + lo. Both blocks and the final sum stay below
	// 58^18 < 2^106, so no overflow check is needed here.
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		d := base58Dec[s[i]]
		if d == 0xFF {
			return Nil, fmt.Errorf("%w: invalid base58 character %q", ErrInvalidFormat, s[i])
		}
		hi = hi*58 + uint64(d)
	}
	for i := 8; i < EncodedLenBase58; i++ {
		d := base58Dec[s[i]]
		if d == 0xFF {
			return Nil, fmt.Errorf("%w: invalid base58 character %q", ErrInvalidFormat, s[i])
		}
		lo = lo*58 + uint64(d)
	}

	n, _ := uint128.From64(hi).Mul64(pow58x10)
	n, _ = n.Add64(lo)
	return ID{n: n}, nil
}
