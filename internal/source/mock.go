package source

import (
	"math"
	"math/rand"

	"adc-monitor.klederson.com/internal/config"
)

// MockSource synthesizes a plausible ADC signal for demo mode: a slow sine
// around mid-scale with per-reading noise, clamped to the 12-bit range.
type MockSource struct {
	base      float64
	amplitude float64
	phase     float64
	step      float64
	t         float64
}

// NewMockSource creates a mock source with randomized waveform parameters.
func NewMockSource() *MockSource {
	mid := float64(config.SampleMax) / 2
	return &MockSource{
		base:      mid + (rand.Float64()-0.5)*mid/2,
		amplitude: 200 + rand.Float64()*800,
		phase:     rand.Float64() * 2 * math.Pi,
		step:      0.05 + rand.Float64()*0.1,
	}
}

// Read returns the next synthetic sample.
func (s *MockSource) Read() uint32 {
	s.t += s.step
	v := s.base + s.amplitude*math.Sin(s.t+s.phase) + (rand.Float64()-0.5)*30
	if v < 0 {
		v = 0
	}
	if v > float64(config.SampleMax) {
		v = float64(config.SampleMax)
	}
	return uint32(v)
}

// Name implements Source.
func (s *MockSource) Name() string { return "mock" }

// Close implements Source.
func (s *MockSource) Close() error { return nil }
