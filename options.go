package tuid

import "time"

// Option configures a Generator.
type Option func(*Generator)

// WithEntropy configures the random-bit source. Pass a crypto-seeded
// source for unguessable identifiers or NewPooledEntropy() for
// throughput.
//
// If nil is passed, the default CryptoEntropy is kept.
func WithEntropy(e Entropy) Option {
	return func(g *Generator) {
		if e != nil {
			g.entropy = e
		}
	}
}

// WithClock configures the wall-clock source. Mainly useful in tests to
// pin generation to a fixed instant.
//
// If nil is passed, the system clock is kept.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}
