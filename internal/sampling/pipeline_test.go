package sampling

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays a fixed value sequence, repeating from the start
// when exhausted.
type scriptedSource struct {
	values []uint32
	idx    int
}

func (s *scriptedSource) Read() uint32 {
	v := s.values[s.idx%len(s.values)]
	s.idx++
	return v
}

func (s *scriptedSource) Name() string { return "scripted" }
func (s *scriptedSource) Close() error { return nil }

func signalPending(n *Notifier) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	return n.Wait(ctx) == nil
}

func TestBatchCompletionSignalsDrain(t *testing.T) {
	src := &scriptedSource{values: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	p := New(Config{Source: src, BatchSize: 10})

	// Drive the sampler by hand, one simulated timer tick at a time.
	for i := 0; i < 9; i++ {
		p.sampler.Tick()
		assert.False(t, signalPending(p.notify), "no signal before the batch completes")
	}
	p.sampler.Tick()
	assert.Equal(t, uint32(10), p.fill.Load())
	require.True(t, signalPending(p.notify), "10th sample must signal the averager")

	avg := p.averager.drain()
	assert.Equal(t, 5.5, avg)
	assert.Equal(t, 5.5, p.Average())
	assert.Equal(t, uint32(0), p.fill.Load(), "drain resets the fill counter")
	assert.Equal(t, 0, p.ring.Len(), "drain empties the ring")
}

func TestAverageCorrectness(t *testing.T) {
	src := &scriptedSource{values: []uint32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}}
	p := New(Config{Source: src, BatchSize: 10})

	for i := 0; i < 10; i++ {
		p.sampler.Tick()
	}
	assert.Equal(t, 55.0, p.averager.drain())
}

func TestAverageSentinelBeforeFirstBatch(t *testing.T) {
	p := New(Config{Source: &scriptedSource{values: []uint32{1}}})
	assert.Equal(t, 0.0, p.Average())
}

func TestIdempotentAverageReads(t *testing.T) {
	src := &scriptedSource{values: []uint32{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}}
	p := New(Config{Source: src, BatchSize: 10})

	for i := 0; i < 10; i++ {
		p.sampler.Tick()
	}
	p.averager.drain()

	for i := 0; i < 5; i++ {
		assert.Equal(t, 55.0, p.Average())
	}
}

func TestTickIsNoOpWhileBatchPending(t *testing.T) {
	src := &scriptedSource{values: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	p := New(Config{Source: src, BatchSize: 10})

	for i := 0; i < 10; i++ {
		p.sampler.Tick()
	}

	// Simulate a delayed drain: further ticks must not read the source,
	// touch the ring, or move the fill counter.
	for i := 0; i < 5; i++ {
		p.sampler.Tick()
	}
	st := p.Stats()
	assert.Equal(t, uint64(10), st.Samples)
	assert.Equal(t, uint64(0), st.Drops)
	assert.Equal(t, uint32(10), st.Fill)

	assert.Equal(t, 5.5, p.averager.drain())
	assert.Equal(t, 0, p.ring.Len())
}

func TestOverrunDropsSample(t *testing.T) {
	src := &scriptedSource{values: []uint32{7}}
	p := New(Config{Source: src, BatchSize: 10})

	// Fill the ring completely but hold the counter below the batch size,
	// forcing the push path to see a full ring.
	for i := 0; i < 10; i++ {
		require.NoError(t, p.ring.Push(uint32(i)))
	}
	p.fill.Store(9)

	p.sampler.Tick()
	st := p.Stats()
	assert.Equal(t, uint64(1), st.Drops, "overrun sample is dropped silently")
	assert.Equal(t, uint32(9), st.Fill, "failed push must not bump the counter")
	assert.Equal(t, 10, p.ring.Len(), "ring contents untouched")
}

func TestDrainUnderflowPanics(t *testing.T) {
	p := New(Config{Source: &scriptedSource{values: []uint32{1}}, BatchSize: 10})

	// A drain with no samples means the counter and the ring diverged.
	assert.Panics(t, func() { p.averager.drain() })
}

func TestPipelineEndToEnd(t *testing.T) {
	src := &scriptedSource{values: []uint32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}
	p := New(Config{Source: src, BatchSize: 10, Period: time.Millisecond})

	p.Start(nil)
	defer p.Stop()

	require.Eventually(t, func() bool {
		return p.Stats().Batches >= 1
	}, 5*time.Second, 5*time.Millisecond, "a batch should publish")

	// Every batch repeats 1..10, so the average is stable at 5.5.
	assert.Equal(t, 5.5, p.Average())
}

func TestPipelinePauseResume(t *testing.T) {
	src := &scriptedSource{values: []uint32{1}}
	p := New(Config{Source: src, Period: time.Millisecond})

	p.Start(nil)
	defer p.Stop()

	require.Eventually(t, func() bool {
		return p.Stats().Samples > 0
	}, 5*time.Second, 5*time.Millisecond)

	p.Pause()
	assert.False(t, p.Running())
	time.Sleep(10 * time.Millisecond)
	taken := p.Stats().Samples
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, taken, p.Stats().Samples, "no samples while paused")

	p.Resume()
	require.Eventually(t, func() bool {
		return p.Stats().Samples > taken
	}, 5*time.Second, 5*time.Millisecond)
}

func TestDefaultsApplied(t *testing.T) {
	p := New(Config{Source: &scriptedSource{values: []uint32{1}}})
	assert.Equal(t, uint32(10), p.batch)
	assert.Equal(t, 100*time.Millisecond, p.period)
	assert.Equal(t, 11, p.ring.Capacity(), "one sentinel slot beyond the batch")
}
