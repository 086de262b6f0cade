// Package proptest provides property-based testing utilities with seeded
// random generation for reproducible tests.
//
// Property-based testing generates random inputs and verifies that certain
// invariants (properties) always hold. When a trial fails, the seed is logged
// so the failure can be reproduced.
//
// Basic usage:
//
//	func TestMyProperty(t *testing.T) {
//	    proptest.Check(t, "my property", proptest.Config{}, func(g *proptest.Generator) bool {
//	        n := g.IntRange(1, 100)
//	        return n >= 1 && n <= 100
//	    })
//	}
package proptest

import (
	"math/rand"
	"testing"
	"time"
)

// Generator wraps a seeded random number generator for reproducible
// random value generation.
type Generator struct {
	rng  *rand.Rand
	seed int64
}

// New creates a new Generator with the given seed.
// If seed is 0, uses the current time as the seed.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed used by this generator, for logging on failure.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Intn returns a random int in [0, n). Panics if n <= 0.
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

// IntRange returns a random int in [min, max].
func (g *Generator) IntRange(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// Bool returns a random boolean with 50% probability for each value.
func (g *Generator) Bool() bool {
	return g.rng.Intn(2) == 1
}

// BoolWithProb returns true with the given probability (0.0 to 1.0).
func (g *Generator) BoolWithProb(prob float64) bool {
	return g.rng.Float64() < prob
}

// String returns a random string of length [1, maxLen] drawn from the given
// alphabet.
func (g *Generator) String(maxLen int, alphabet string) string {
	n := g.IntRange(1, maxLen)
	out := make([]byte, n)
	for i := range out {
		out[i] = alphabet[g.rng.Intn(len(alphabet))]
	}
	return string(out)
}

// Config controls a Check run.
type Config struct {
	// NumTrials is the number of random inputs to try. Defaults to 100.
	NumTrials int

	// Seed fixes the generator seed. Zero picks one from the clock.
	Seed int64
}

// Check runs the property against NumTrials random inputs and fails the test
// on the first input for which the property returns false, logging the seed.
func Check(t *testing.T, name string, cfg Config, property func(g *Generator) bool) {
	t.Helper()

	trials := cfg.NumTrials
	if trials <= 0 {
		trials = 100
	}

	g := New(cfg.Seed)
	for i := 0; i < trials; i++ {
		if !property(g) {
			t.Fatalf("property %q failed on trial %d (seed %d)", name, i, g.Seed())
		}
	}
}
