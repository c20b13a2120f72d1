package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparklineShape(t *testing.T) {
	s := Sparkline([]float64{0, 1, 2, 3, 4, 5, 6, 7}, 20)
	assert.Equal(t, "▁▂▃▄▅▆▇█", s)
}

func TestSparklineFlatSignal(t *testing.T) {
	s := Sparkline([]float64{5, 5, 5}, 20)
	assert.Equal(t, "▅▅▅", s, "a flat trace sits mid-scale")
}

func TestSparklineTruncatesToWidth(t *testing.T) {
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i)
	}
	s := Sparkline(values, 10)
	assert.Equal(t, 10, len([]rune(s)))
}
