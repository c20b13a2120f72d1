package sampling

import (
	"sync/atomic"

	"adc-monitor.klederson.com/internal/source"
	"github.com/sirupsen/logrus"
)

// Sampler is the producer half of the pipeline. Tick runs once per timer
// period: it reads one sample from the source, pushes it into the ring and
// signals the averager when the batch fill count reaches the batch size.
// Tick does bounded work and never blocks.
type Sampler struct {
	src    source.Source
	ring   *Ring
	fill   *atomic.Uint32
	batch  uint32
	notify *Notifier

	samples *atomic.Uint64
	drops   *atomic.Uint64
	log     *logrus.Logger
}

// Tick takes one sample. While a completed batch is waiting to be drained
// (fill == batch) the tick is a no-op, so the producer can never disturb
// the buffer between batch completion and the averager's reset.
func (s *Sampler) Tick() {
	if s.fill.Load() >= s.batch {
		return
	}

	v := s.src.Read()
	s.samples.Add(1)

	if err := s.ring.Push(v); err != nil {
		// Overrun: the sample is dropped, never retried.
		n := s.drops.Add(1)
		if n == 1 || n%100 == 0 {
			s.log.WithField("drops", n).Warn("sample dropped, ring full")
		}
		return
	}

	if s.fill.Add(1) == s.batch {
		s.notify.Signal()
	}
}
