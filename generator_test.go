package tuid_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/tuid"
	"github.com/hupe1980/tuid/testutil"
)

func TestGenerator_AtEpochWithZeroRandom(t *testing.T) {
	id := generateAt(t, tuid.Epoch(), 0)

	assert.True(t, id.IsZero())
	assert.Equal(t, "111111111111111111", id.Base58())
}

func TestGenerator_PacksFields(t *testing.T) {
	at := tuid.Epoch().Add(12345 * time.Millisecond)
	id := generateAt(t, at, 0xDEADBEEF)

	assert.Equal(t, uint64(12345), id.Timestamp())
	assert.Equal(t, uint64(0xDEADBEEF), id.Random())
	assert.Equal(t, at, id.Time())
}

func TestGenerator_MasksEntropyToRandomWidth(t *testing.T) {
	// All 64 entropy bits set: only the low 58 may land in the ID.
	id := generateAt(t, tuid.Epoch(), ^uint64(0))

	assert.Equal(t, uint64(1<<58-1), id.Random())
	assert.Equal(t, uint64(0), id.Timestamp())
}

func TestGenerator_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
	}{
		{"before epoch", tuid.Epoch().Add(-time.Millisecond)},
		{"distant past", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"beyond horizon", time.UnixMilli(tuid.Epoch().UnixMilli() + 1<<48)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tuid.NewGenerator(tuid.WithEntropy(testutil.FixedEntropy(0)))
			_, err := g.NewWithTime(tt.at)
			assert.ErrorIs(t, err, tuid.ErrOutOfRange)
		})
	}
}

func TestGenerator_HorizonBoundary(t *testing.T) {
	// The last representable millisecond still generates.
	g := tuid.NewGenerator(tuid.WithEntropy(testutil.FixedEntropy(0)))
	id, err := g.NewWithTime(time.UnixMilli(tuid.Epoch().UnixMilli() + 1<<48 - 1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<48-1), id.Timestamp())
}

func TestGenerator_Monotonic(t *testing.T) {
	base := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)
	rng := testutil.NewRNG(1)
	g := tuid.NewGenerator(tuid.WithEntropy(rng))

	prev, err := g.NewWithTime(base)
	require.NoError(t, err)
	for i := 1; i <= 100; i++ {
		id, err := g.NewWithTime(base.Add(time.Duration(i) * time.Millisecond))
		require.NoError(t, err)
		assert.Equal(t, -1, prev.Compare(id), "iteration %d", i)
		prev = id
	}
}

func TestGenerator_DeterministicWithSeededEntropy(t *testing.T) {
	at := time.Date(2026, 8, 25, 9, 30, 0, 0, time.UTC)

	rng := testutil.NewRNG(42)
	g := tuid.NewGenerator(tuid.WithClock(testutil.Clock(at)), tuid.WithEntropy(rng))

	first, err := g.New()
	require.NoError(t, err)

	rng.Reset()
	second, err := g.New()
	require.NoError(t, err)

	assert.Equal(t, 0, first.Compare(second))
}

func TestGenerator_ConcurrentUnique(t *testing.T) {
	const (
		workers = 8
		perW    = 1000
	)

	g := tuid.NewGenerator(tuid.WithEntropy(tuid.NewPooledEntropy()))

	ids := make([][]tuid.ID, workers)
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		ids[w] = make([]tuid.ID, perW)
		out := ids[w]
		eg.Go(func() error {
			for i := range out {
				id, err := g.New()
				if err != nil {
					return err
				}
				out[i] = id
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	seen := make(map[tuid.ID]struct{}, workers*perW)
	for _, batch := range ids {
		for _, id := range batch {
			_, dup := seen[id]
			require.False(t, dup, "duplicate id %s", id)
			seen[id] = struct{}{}
		}
	}
}

func TestDefaultGenerator(t *testing.T) {
	id, err := tuid.New()
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.WithinDuration(t, time.Now(), id.Time(), time.Minute)

	assert.NotPanics(t, func() { tuid.MustNew() })

	past, err := tuid.NewWithTime(time.Date(2023, 3, 14, 1, 59, 26, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 3, 14, 1, 59, 26, 0, time.UTC), past.Time())
}

func TestEntropySources(t *testing.T) {
	// Crypto entropy yields differing draws.
	ce := tuid.CryptoEntropy()
	assert.NotEqual(t, ce.Uint64(), ce.Uint64())

	// Pooled entropy is usable from many goroutines.
	pe := tuid.NewPooledEntropy()
	var eg errgroup.Group
	for w := 0; w < 4; w++ {
		eg.Go(func() error {
			for i := 0; i < 100; i++ {
				pe.Uint64()
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
