package sampling

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// AveragePublishedMsg is sent via tea.Program.Send each time a batch mean
// is published.
type AveragePublishedMsg struct {
	Average float64
	Batch   uint64 // 1-based batch sequence number
}

// Averager is the consumer half of the pipeline. It blocks on the notifier
// until a batch completes, drains exactly one batch from the ring, publishes
// the mean and resets the fill counter so the sampler may fill again.
type Averager struct {
	ring      *Ring
	fill      *atomic.Uint32
	batch     uint32
	notify    *Notifier
	published *atomic.Uint64 // math.Float64bits of the latest mean
	batches   *atomic.Uint64

	program *tea.Program
	log     *logrus.Logger
}

// Run loops until ctx is cancelled. It must be the only goroutine popping
// the ring or resetting the fill counter.
func (a *Averager) Run(ctx context.Context) {
	for {
		if err := a.notify.Wait(ctx); err != nil {
			return
		}
		avg := a.drain()
		n := a.batches.Add(1)
		a.log.WithFields(logrus.Fields{"batch": n, "average": avg}).Debug("batch published")
		if a.program != nil {
			a.program.Send(AveragePublishedMsg{Average: avg, Batch: n})
		}
	}
}

// drain pops one full batch, publishes the mean and resets the fill counter.
// The counter reset must come last: it is what re-opens the buffer to the
// sampler, and it may only happen once every slot of the batch is consumed.
func (a *Averager) drain() float64 {
	var sum uint64
	for i := uint32(0); i < a.batch; i++ {
		v, err := a.ring.Pop()
		if err != nil {
			// The fill counter said a full batch is here. If the ring
			// disagrees the two have desynchronized for good; continuing
			// would publish garbage forever.
			a.log.WithError(err).WithField("popped", i).Error("batch drain underflow")
			panic(fmt.Sprintf("sampling: drained %d of %d samples: %v", i, a.batch, err))
		}
		sum += uint64(v)
	}

	avg := float64(sum) / float64(a.batch)
	a.published.Store(math.Float64bits(avg))
	a.fill.Store(0)
	return avg
}
