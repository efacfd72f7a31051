// Package tuid provides a compact, k-sorted, 106-bit unique identifier.
//
// # Layout
//
// An identifier is a 106-bit value stored in a 128-bit word:
//
//	┌──────────┬──────────────────────┬────────────────────────┐
//	│ 22 bits  │       48 bits        │        58 bits         │
//	│ reserved │ timestamp (ms since  │     random             │
//	│ (zero)   │ 2020-01-01T00:00:00Z)│                        │
//	└──────────┴──────────────────────┴────────────────────────┘
//
// The timestamp occupies the most-significant used bits, so numeric
// comparison — and the lexicographic order of every text encoding below —
// follows generation time at millisecond granularity. Identifiers from the
// same millisecond order by their random fields; there is no cross-process
// monotonicity guarantee within a millisecond.
//
// The 48-bit millisecond horizon reaches roughly 8900 years past 2020.
//
// # Encodings
//
// Every encoding is fixed-width, which is what makes length-based
// auto-detection in Parse possible:
//
//	Encoding  Width  Alphabet
//	Base58    18     Bitcoin ordering, no 0/O/I/l
//	Base32    22     Crockford, decode tolerates O→0, I/L→1, any case
//	Base64    24     standard with padding, over the 16-byte form
//	Hex       27     upper or lower on encode, mixed on decode
//	Binary    16 B   big-endian 128-bit word
//
// Base58 is the canonical String() form. One caveat: 58^18 is slightly
// below 2^106, so the top sliver of the value domain (timestamps past
// roughly year 8087) does not round-trip through Base58; all other
// encodings cover the full domain.
//
// # Quick Start
//
//	id := tuid.MustNew()
//	fmt.Println(id)           // 18-char Base58, e.g. 1NhSufHVaj8FXyPL2U
//	fmt.Println(id.Base32())  // 22-char Crockford
//	fmt.Println(id.Time())    // generation instant, ms precision
//
//	parsed, err := tuid.Parse("1NhSufHVaj8FXyPL2U") // detects Base58 by length
//
// # Generation and entropy
//
// Generation reads a clock and an entropy source, both injectable via a
// Generator:
//
//	g := tuid.NewGenerator(tuid.WithEntropy(tuid.NewPooledEntropy()))
//	id, err := g.New()
//
// The default entropy is crypto/rand, chosen so identifiers are
// unguessable by default; NewPooledEntropy trades that property for
// speed. Codec operations are pure and reentrant: the only shared state
// in the package is the entropy source.
package tuid
