// Package testutil provides deterministic entropy and clock helpers for
// tests and benchmarks.
package testutil
