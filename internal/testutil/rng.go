// Package testutil provides seeded random generators for the frontcoded
// test suite.
package testutil

import (
	"math"
	"math/rand"
)

// RNG encapsulates a seeded random number generator so tests can log the
// seed that produced a failure and reproduce it deterministically.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec
		seed: seed,
	}
}

// Seed returns the seed this RNG was constructed with.
func (r *RNG) Seed() int64 { return r.seed }

// GaussianLength samples |N(0, 1)| * scale, truncated to a non-negative int.
func (r *RNG) GaussianLength(scale float64) int {
	v := math.Abs(r.rand.NormFloat64()) * scale
	return int(v)
}

// Int8Array generates a random int8 array of the given length.
func (r *RNG) Int8Array(n int) []int8 {
	a := make([]int8, n)
	for i := range a {
		a[i] = int8(r.rand.Intn(256) - 128)
	}
	return a
}

// Int16Array generates a random int16 array of the given length.
func (r *RNG) Int16Array(n int) []int16 {
	a := make([]int16, n)
	for i := range a {
		a[i] = int16(r.rand.Intn(1<<16) - 1<<15)
	}
	return a
}

// Uint16Array generates a random uint16 array of the given length.
func (r *RNG) Uint16Array(n int) []uint16 {
	a := make([]uint16, n)
	for i := range a {
		a[i] = uint16(r.rand.Intn(1 << 16))
	}
	return a
}

// Int32Array generates a random int32 array of the given length.
func (r *RNG) Int32Array(n int) []int32 {
	a := make([]int32, n)
	for i := range a {
		a[i] = r.rand.Int31()
	}
	return a
}

// Int64Array generates a random int64 array of the given length.
func (r *RNG) Int64Array(n int) []int64 {
	a := make([]int64, n)
	for i := range a {
		a[i] = r.rand.Int63()
	}
	return a
}

// Intn exposes the underlying generator's Intn for tests that need raw
// bounded randomness (e.g. picking a ratio).
func (r *RNG) Intn(n int) int { return r.rand.Intn(n) }
