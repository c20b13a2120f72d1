package sampling

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrFull is returned by Push when the ring cannot take another sample.
	ErrFull = errors.New("ring buffer is full")
	// ErrEmpty is returned by Pop when the ring holds no samples.
	ErrEmpty = errors.New("ring buffer is empty")
)

// Ring is a fixed-capacity circular buffer of raw ADC samples shared by
// exactly one producer (the sampler tick) and one consumer (the averager).
// head == tail is the empty state; to keep that state unambiguous without a
// separate count field, a slot is kept in reserve, so at most capacity-1
// samples are live at once.
//
// head is written only by the producer and tail only by the consumer. The
// atomic stores order each slot write before the index advance that makes
// it visible, which is what keeps the pair safe across goroutines without
// a lock.
type Ring struct {
	buf  []uint32
	head atomic.Uint32 // next write slot, producer-owned
	tail atomic.Uint32 // next read slot, consumer-owned
}

// NewRing creates a ring buffer with the given capacity. Capacity must be
// at least 2; one slot is always reserved for the empty/full sentinel.
func NewRing(capacity int) *Ring {
	if capacity < 2 {
		capacity = 2
	}
	return &Ring{buf: make([]uint32, capacity)}
}

// Capacity returns the size of the backing array. The ring stores at most
// Capacity()-1 samples.
func (r *Ring) Capacity() int {
	return len(r.buf)
}

// Len returns the number of samples currently stored.
func (r *Ring) Len() int {
	n := len(r.buf)
	return (int(r.head.Load()) - int(r.tail.Load()) + n) % n
}

// Push writes one sample at head. It fails with ErrFull, leaving the ring
// unchanged, when advancing head would collide with tail.
func (r *Ring) Push(v uint32) error {
	head := r.head.Load()
	next := (head + 1) % uint32(len(r.buf))
	if next == r.tail.Load() {
		return ErrFull
	}
	r.buf[head] = v
	r.head.Store(next)
	return nil
}

// Pop reads one sample at tail. It fails with ErrEmpty when the ring holds
// no samples.
func (r *Ring) Pop() (uint32, error) {
	tail := r.tail.Load()
	if tail == r.head.Load() {
		return 0, ErrEmpty
	}
	v := r.buf[tail]
	r.tail.Store((tail + 1) % uint32(len(r.buf)))
	return v, nil
}
