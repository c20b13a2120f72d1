package sampling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingCapacityInvariant(t *testing.T) {
	r := NewRing(10)

	// One slot stays reserved for the empty/full sentinel.
	for i := 0; i < 9; i++ {
		require.NoError(t, r.Push(uint32(i)))
	}
	assert.Equal(t, 9, r.Len())

	err := r.Push(99)
	require.ErrorIs(t, err, ErrFull)
	assert.Equal(t, 9, r.Len(), "failed push must leave state unchanged")

	// The rejected value must not have leaked into any slot.
	for i := 0; i < 9; i++ {
		v, err := r.Pop()
		require.NoError(t, err)
		assert.Equal(t, uint32(i), v)
	}
	assert.Equal(t, 0, r.Len())
}

func TestRingFIFO(t *testing.T) {
	r := NewRing(8)
	in := []uint32{42, 7, 0, 4095, 1}
	for _, v := range in {
		require.NoError(t, r.Push(v))
	}
	for _, want := range in {
		got, err := r.Pop()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestRingPopEmpty(t *testing.T) {
	r := NewRing(4)
	_, err := r.Pop()
	assert.ErrorIs(t, err, ErrEmpty)

	require.NoError(t, r.Push(1))
	_, err = r.Pop()
	require.NoError(t, err)
	_, err = r.Pop()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRingWrapAround(t *testing.T) {
	r := NewRing(4)

	// Cycle enough values through to wrap head and tail several times.
	next := uint32(0)
	for round := 0; round < 10; round++ {
		for i := 0; i < 3; i++ {
			require.NoError(t, r.Push(next+uint32(i)))
		}
		for i := 0; i < 3; i++ {
			v, err := r.Pop()
			require.NoError(t, err)
			assert.Equal(t, next+uint32(i), v)
		}
		next += 3
	}
}

func TestRingMinimumCapacity(t *testing.T) {
	r := NewRing(0)
	assert.Equal(t, 2, r.Capacity())
	require.NoError(t, r.Push(7))
	assert.ErrorIs(t, r.Push(8), ErrFull)
}
