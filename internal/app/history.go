package app

// AvgRing keeps the most recent published averages for the scope sparkline.
// Unlike the sampling ring it overwrites oldest-first and is only ever
// touched from the UI goroutine.
type AvgRing struct {
	buf   []float64
	pos   int
	count int
}

// NewAvgRing creates a history ring with the given capacity.
func NewAvgRing(capacity int) *AvgRing {
	return &AvgRing{
		buf: make([]float64, capacity),
	}
}

// Push records a published average, evicting the oldest when full.
func (r *AvgRing) Push(avg float64) {
	r.buf[r.pos] = avg
	r.pos = (r.pos + 1) % len(r.buf)
	if r.count < len(r.buf) {
		r.count++
	}
}

// Values returns the stored averages oldest first.
func (r *AvgRing) Values() []float64 {
	if r.count == 0 {
		return nil
	}
	result := make([]float64, r.count)
	if r.count < len(r.buf) {
		copy(result, r.buf[:r.count])
	} else {
		n := copy(result, r.buf[r.pos:])
		copy(result[n:], r.buf[:r.pos])
	}
	return result
}

// Last returns the most recent average, or 0 if none were recorded.
func (r *AvgRing) Last() float64 {
	if r.count == 0 {
		return 0
	}
	return r.buf[(r.pos-1+len(r.buf))%len(r.buf)]
}

// Len returns the number of recorded averages.
func (r *AvgRing) Len() int {
	return r.count
}
