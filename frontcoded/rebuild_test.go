package frontcoded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcoded/frontcoded/internal/testutil"
)

func TestRebuild_MatchesOriginalIndex(t *testing.T) {
	arrays := toInt8Arrays("foo", "foobar", "football", "fool", "for", "foray")
	original, err := BuildFromSlice(arrays, 3)
	require.NoError(t, err)

	rebuilt, err := Rebuild[int8](original.buf, uint32(original.Size()), original.Ratio())
	require.NoError(t, err)

	require.Equal(t, original.index.len(), rebuilt.index.len())
	for k := 0; k < original.index.len(); k++ {
		assert.Equal(t, original.index.at(k), rebuilt.index.at(k))
	}

	for i, want := range arrays {
		got, err := rebuilt.Get(i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRebuild_InvalidRatio(t *testing.T) {
	buf := newSliceBuffer[int8](0)
	_, err := Rebuild[int8](buf, 0, 0)
	assert.ErrorIs(t, err, ErrInvalidRatio)
}

func TestRebuild_DetectsTruncatedBuffer(t *testing.T) {
	// A single byte claiming a 3-element anchor with only the length byte
	// present; n=1 so Rebuild expects to walk one full record.
	buf := newSliceBuffer[int8](0)
	buf.append(3)

	_, err := Rebuild[int8](buf, 1, 1)
	require.Error(t, err)
	var target *ErrDataCorruption
	assert.ErrorAs(t, err, &target)
}

func TestRebuild_PropertyAgainstOriginal(t *testing.T) {
	rng := testutil.NewRNG(7)

	for trial := 0; trial < 10; trial++ {
		n := rng.Intn(60)
		ratio := uint32(rng.Intn(8) + 1)

		oracle := make([][]int16, n)
		for i := range oracle {
			oracle[i] = rng.Int16Array(rng.GaussianLength(5))
		}

		original, err := BuildFromSlice(oracle, ratio)
		require.NoError(t, err)

		rebuilt, err := Rebuild[int16](original.buf, uint32(n), ratio)
		require.NoError(t, err, "seed=%d trial=%d", rng.Seed(), trial)

		assert.True(t, original.Equal(rebuilt), "seed=%d trial=%d", rng.Seed(), trial)
		assert.Equal(t, original.index.len(), rebuilt.index.len())
	}
}
