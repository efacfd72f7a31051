package tuid

import (
	"fmt"
	"time"

	"github.com/hupe1980/tuid/internal/uint128"
)

const (
	// TimestampBits is the width of the millisecond timestamp field.
	TimestampBits = 48

	// RandomBits is the width of the random field.
	RandomBits = 58

	// ValueBits is the logical width of an identifier. The remaining
	// 22 bits of the 128-bit word are reserved and always zero.
	ValueBits = TimestampBits + RandomBits

	// epochMillis is 2020-01-01T00:00:00Z in Unix milliseconds. All
	// timestamp fields count from this instant.
	epochMillis int64 = 1577836800000

	// maxTimestamp is the largest representable timestamp delta,
	// about 8900 years past the custom epoch.
	maxTimestamp = 1<<TimestampBits - 1

	randomMask = 1<<RandomBits - 1

	// maxHi is the largest permitted high word: the top 22 bits of the
	// 128-bit storage word are reserved and must be zero.
	maxHi = 1<<(ValueBits-64) - 1
)

// Epoch returns the custom epoch (2020-01-01T00:00:00Z) from which the
// timestamp field counts milliseconds.
func Epoch() time.Time {
	return time.UnixMilli(epochMillis).UTC()
}

// ID is a 106-bit, time-ordered unique identifier stored in a 128-bit word:
// a 48-bit millisecond timestamp since the custom epoch over a 58-bit
// random field. The 22 high bits are reserved and always zero.
//
// Because the timestamp occupies the most-significant bits, numeric order
// (and the lexicographic order of every fixed-width text encoding) follows
// generation time at millisecond granularity: IDs are k-sorted. Two IDs
// from the same millisecond order by their random fields only.
//
// The zero value is Nil. IDs are immutable and comparable with ==.
type ID struct {
	n uint128.Uint128
}

// Nil is the zero identifier.
var Nil ID

// FromBytes parses a 16-byte big-endian binary form.
//
// The 22 reserved high bits must be zero; input with any of them set is
// rejected with ErrInvalidFormat rather than silently masked.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 16 {
		return Nil, fmt.Errorf("%w: binary form must be 16 bytes, got %d", ErrInvalidFormat, len(b))
	}
	n := uint128.FromBytes(b)
	if n.Hi > maxHi {
		return Nil, fmt.Errorf("%w: reserved bits are not zero", ErrInvalidFormat)
	}
	return ID{n: n}, nil
}

// Bytes returns the 16-byte big-endian binary form of the full 128-bit
// word. The 22 reserved high bits are zero.
func (id ID) Bytes() []byte {
	b := make([]byte, 16)
	id.n.PutBytes(b)
	return b
}

// Time returns the instant the identifier was generated, at millisecond
// precision, in UTC. It is the exact inverse of the packing step.
func (id ID) Time() time.Time {
	return time.UnixMilli(int64(id.Timestamp()) + epochMillis).UTC()
}

// Timestamp returns the raw timestamp field: milliseconds elapsed since
// the custom epoch.
func (id ID) Timestamp() uint64 {
	return id.n.Shr(RandomBits).Lo
}

// Random returns the 58-bit random field.
func (id ID) Random() uint64 {
	return id.n.Lo & randomMask
}

// Compare returns -1, 0 or 1 by unsigned numeric comparison of the
// 128-bit values. Identifiers sort by generation time first.
func (id ID) Compare(other ID) int {
	return id.n.Cmp(other.n)
}

// IsZero reports whether id is the Nil identifier.
func (id ID) IsZero() bool {
	return id.n.IsZero()
}

// String returns the canonical text form, Base58.
func (id ID) String() string {
	return id.Base58()
}
