package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvgRingEmpty(t *testing.T) {
	r := NewAvgRing(4)
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())
	assert.Equal(t, 0, r.Len())
}

func TestAvgRingPartialFill(t *testing.T) {
	r := NewAvgRing(4)
	r.Push(1.5)
	r.Push(2.5)
	assert.Equal(t, []float64{1.5, 2.5}, r.Values())
	assert.Equal(t, 2.5, r.Last())
	assert.Equal(t, 2, r.Len())
}

func TestAvgRingEvictsOldest(t *testing.T) {
	r := NewAvgRing(3)
	for _, v := range []float64{1, 2, 3, 4, 5} {
		r.Push(v)
	}
	assert.Equal(t, []float64{3, 4, 5}, r.Values())
	assert.Equal(t, 5.0, r.Last())
	assert.Equal(t, 3, r.Len())
}
