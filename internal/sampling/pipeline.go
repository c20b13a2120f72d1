package sampling

import (
	"context"
	"io"
	"math"
	"sync/atomic"
	"time"

	"adc-monitor.klederson.com/internal/config"
	"adc-monitor.klederson.com/internal/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
)

// Config carries pipeline construction parameters. Zero values fall back to
// the defaults in internal/config.
type Config struct {
	Source    source.Source
	Period    time.Duration // tick period, default 100ms (10 Hz)
	BatchSize int           // samples per published average, default 10
	Log       *logrus.Logger
}

// Stats is a point-in-time snapshot of pipeline counters.
type Stats struct {
	Samples uint64 // samples read from the source
	Drops   uint64 // samples lost to ring overrun
	Batches uint64 // averages published
	Fill    uint32 // current batch fill count
}

// Pipeline owns the sampling core end to end: the ring buffer, the batch
// fill counter, the published average and the wakeup channel, wired to one
// sampler (producer) and one averager (consumer). All cross-goroutine state
// lives here as explicit fields rather than package globals.
type Pipeline struct {
	ring      *Ring
	fill      atomic.Uint32
	published atomic.Uint64 // math.Float64bits of the latest mean, 0.0 before the first batch
	notify    *Notifier

	sampler  *Sampler
	averager *Averager

	period  time.Duration
	batch   uint32
	samples atomic.Uint64
	drops   atomic.Uint64
	batches atomic.Uint64

	running atomic.Bool // sampling active (pause/resume)
	cancel  context.CancelFunc
	log     *logrus.Logger
}

// New creates a stopped pipeline. The ring gets one slot beyond the batch
// size: head==tail is reserved as the empty sentinel, so batch+1 backing
// slots are needed for a complete batch to fit.
func New(cfg Config) *Pipeline {
	if cfg.Period <= 0 {
		cfg.Period = config.SamplePeriod
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = config.BatchSize
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
		cfg.Log.SetOutput(io.Discard)
	}

	p := &Pipeline{
		ring:   NewRing(cfg.BatchSize + 1),
		notify: NewNotifier(),
		period: cfg.Period,
		batch:  uint32(cfg.BatchSize),
		log:    cfg.Log,
	}
	p.sampler = &Sampler{
		src:     cfg.Source,
		ring:    p.ring,
		fill:    &p.fill,
		batch:   p.batch,
		notify:  p.notify,
		samples: &p.samples,
		drops:   &p.drops,
		log:     p.log,
	}
	p.averager = &Averager{
		ring:      p.ring,
		fill:      &p.fill,
		batch:     p.batch,
		notify:    p.notify,
		published: &p.published,
		batches:   &p.batches,
		log:       p.log,
	}
	return p
}

// Start launches the timer goroutine driving the sampler and the averager
// goroutine. Published averages are also delivered to prog as
// AveragePublishedMsg; prog may be nil. Must be called at most once.
func (p *Pipeline) Start(prog *tea.Program) {
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.averager.program = prog
	p.running.Store(true)

	go p.averager.Run(ctx)
	go p.tickLoop(ctx)

	p.log.WithFields(logrus.Fields{
		"source": p.sampler.src.Name(),
		"period": p.period,
		"batch":  p.batch,
	}).Info("sampling pipeline started")
}

func (p *Pipeline) tickLoop(ctx context.Context) {
	ticker := time.NewTicker(p.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if p.running.Load() {
				p.sampler.Tick()
			}
		}
	}
}

// Stop cancels both goroutines. The pipeline cannot be restarted.
func (p *Pipeline) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.log.Info("sampling pipeline stopped")
}

// Pause suspends sampling; ticks are discarded until Resume.
func (p *Pipeline) Pause() { p.running.Store(false) }

// Resume re-enables sampling after a Pause.
func (p *Pipeline) Resume() { p.running.Store(true) }

// Running reports whether sampling is active.
func (p *Pipeline) Running() bool { return p.running.Load() }

// Average returns the most recently published mean, or 0.0 before the first
// batch completes. Safe to call from any goroutine at any time; a caller
// racing a publish sees either the previous or the new value, never a torn
// one.
func (p *Pipeline) Average() float64 {
	return math.Float64frombits(p.published.Load())
}

// BatchSize returns the number of samples per published average.
func (p *Pipeline) BatchSize() int { return int(p.batch) }

// Period returns the sampling tick period.
func (p *Pipeline) Period() time.Duration { return p.period }

// Stats returns a snapshot of the pipeline counters.
func (p *Pipeline) Stats() Stats {
	return Stats{
		Samples: p.samples.Load(),
		Drops:   p.drops.Load(),
		Batches: p.batches.Load(),
		Fill:    p.fill.Load(),
	}
}
