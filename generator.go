package tuid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/hupe1980/tuid/internal/uint128"
)

// Entropy supplies the random field bits, 64 at a time; the low 58 bits of
// each value are used. Implementations must be safe for concurrent use.
//
// Any math/rand/v2 Source satisfies the interface, but the top-level
// rand/v2 sources are not concurrency-safe on their own; wrap them or use
// NewPooledEntropy.
type Entropy interface {
	Uint64() uint64
}

// CryptoEntropy returns the default entropy source, backed by crypto/rand.
//
// Cryptographic randomness is the safer default for identifiers exposed to
// untrusted parties: the random field is unguessable. It is slower than a
// pooled PRNG and can in principle block while the OS entropy pool warms
// up early at boot; that cost is the caller's to weigh. See
// NewPooledEntropy for the fast alternative.
func CryptoEntropy() Entropy {
	return cryptoEntropy{}
}

type cryptoEntropy struct{}

func (cryptoEntropy) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(fmt.Errorf("tuid: entropy source failed: %w", err))
	}
	return binary.BigEndian.Uint64(b[:])
}

// NewPooledEntropy returns a fast, non-cryptographic entropy source: a
// sync.Pool of ChaCha8 generators, each seeded once from crypto/rand.
//
// The pool gives each goroutine an effectively private generator, so there
// is no lock contention on the hot path. Output is not suitable for
// anti-guessing requirements; prefer the default CryptoEntropy when
// identifiers must be unpredictable.
func NewPooledEntropy() Entropy {
	return &pooledEntropy{
		pool: sync.Pool{
			New: func() any {
				var seed [32]byte
				if _, err := crand.Read(seed[:]); err != nil {
					panic(fmt.Errorf("tuid: entropy source failed: %w", err))
				}
				return rand.NewChaCha8(seed)
			},
		},
	}
}

type pooledEntropy struct {
	pool sync.Pool
}

func (p *pooledEntropy) Uint64() uint64 {
	g := p.pool.Get().(*rand.ChaCha8)
	v := g.Uint64()
	p.pool.Put(g)
	return v
}

// Generator produces identifiers from a clock and an entropy source. Both
// are injectable; the zero-configuration generator reads the system clock
// and CryptoEntropy.
//
// A Generator holds no mutable state of its own and is safe for concurrent
// use as long as its entropy source is.
type Generator struct {
	entropy Entropy
	now     func() time.Time
}

// NewGenerator creates a Generator. See WithEntropy and WithClock.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		entropy: CryptoEntropy(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// New generates an identifier for the current instant.
func (g *Generator) New() (ID, error) {
	return g.NewWithTime(g.now())
}

// NewWithTime generates an identifier for the given instant with fresh
// random bits.
//
// It fails with ErrOutOfRange if t precedes the custom epoch or lies at or
// beyond the 48-bit millisecond horizon. Both indicate a misused API, not
// a transient condition: there is nothing to retry.
func (g *Generator) NewWithTime(t time.Time) (ID, error) {
	delta := t.UnixMilli() - epochMillis
	if delta < 0 {
		return Nil, fmt.Errorf("%w: %s precedes the epoch %s", ErrOutOfRange, t.UTC().Format(time.RFC3339), Epoch().Format(time.RFC3339))
	}
	if delta > maxTimestamp {
		return Nil, fmt.Errorf("%w: %s exceeds the %d-bit timestamp horizon", ErrOutOfRange, t.UTC().Format(time.RFC3339), TimestampBits)
	}

	n := uint128.From64(uint64(delta)).Shl(RandomBits)
	n.Lo |= g.entropy.Uint64() & randomMask
	return ID{n: n}, nil
}

// defaultGenerator backs the package-level constructors.
var defaultGenerator = NewGenerator()

// New generates an identifier for the current instant using the default
// generator (system clock, CryptoEntropy).
func New() (ID, error) {
	return defaultGenerator.New()
}

// NewWithTime generates an identifier for the given instant using the
// default generator.
func NewWithTime(t time.Time) (ID, error) {
	return defaultGenerator.NewWithTime(t)
}

// MustNew is like New but panics on error. The current clock is always in
// range, so a panic indicates a broken system clock.
func MustNew() ID {
	id, err := New()
	if err != nil {
		panic(err)
	}
	return id
}
