// Package uint128 implements unsigned 128-bit integer arithmetic over two
// 64-bit halves.
//
// This package is internal: it exists to support the 106-bit identifier
// word on platforms without a native uint128. Only the operations the
// codecs need are provided (shift, or, compare, multiply/add with carry,
// and division by a 64-bit divisor).
package uint128

import (
	"encoding/binary"
	"math/bits"
)

// Uint128 is an unsigned 128-bit integer.
//
// Layout:
//
//	Hi: bits 64..127
//	Lo: bits 0..63
//
// The zero value is the number zero. Values are comparable with ==.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// From64 returns x as a Uint128.
func From64(x uint64) Uint128 {
	return Uint128{Lo: x}
}

// FromBytes interprets b as a big-endian 128-bit integer.
// b must be at least 16 bytes.
func FromBytes(b []byte) Uint128 {
	_ = b[15] // BCE hint
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// PutBytes writes u to b in big-endian order.
// b must be at least 16 bytes.
func (u Uint128) PutBytes(b []byte) {
	_ = b[15]
	binary.BigEndian.PutUint64(b[0:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:16], u.Lo)
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi|u.Lo == 0
}

// Cmp returns -1, 0 or 1 depending on whether u is less than, equal to,
// or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Or returns u | v.
func (u Uint128) Or(v Uint128) Uint128 {
	return Uint128{Hi: u.Hi | v.Hi, Lo: u.Lo | v.Lo}
}

// Shl returns u << n. Shifts of 128 or more return zero.
func (u Uint128) Shl(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	default:
		return Uint128{
			Hi: u.Hi<<n | u.Lo>>(64-n),
			Lo: u.Lo << n,
		}
	}
}

// Shr returns u >> n. Shifts of 128 or more return zero.
func (u Uint128) Shr(n uint) Uint128 {
	switch {
	case n == 0:
		return u
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	default:
		return Uint128{
			Hi: u.Hi >> n,
			Lo: u.Lo>>n | u.Hi<<(64-n),
		}
	}
}

// Mul64 returns u * m and the bits carried out of the 128-bit result.
// A non-zero carry means the true product does not fit in 128 bits.
func (u Uint128) Mul64(m uint64) (Uint128, uint64) {
	hiHi, hiLo := bits.Mul64(u.Hi, m)
	loHi, loLo := bits.Mul64(u.Lo, m)
	mid, c := bits.Add64(hiLo, loHi, 0)
	return Uint128{Hi: mid, Lo: loLo}, hiHi + c
}

// Add64 returns u + x and the carry out of the 128-bit result.
func (u Uint128) Add64(x uint64) (Uint128, uint64) {
	lo, c := bits.Add64(u.Lo, x, 0)
	hi, c := bits.Add64(u.Hi, 0, c)
	return Uint128{Hi: hi, Lo: lo}, c
}

// QuoRem64 returns the quotient u / d and remainder u % d.
// It panics if d == 0 (same contract as native integer division).
func (u Uint128) QuoRem64(d uint64) (Uint128, uint64) {
	if u.Hi < d {
		lo, r := bits.Div64(u.Hi, u.Lo, d)
		return Uint128{Lo: lo}, r
	}
	hi := u.Hi / d
	rem := u.Hi % d
	lo, r := bits.Div64(rem, u.Lo, d)
	return Uint128{Hi: hi, Lo: lo}, r
}
