package sampling

import "context"

// Notifier is the one-shot wakeup from the sampler tick to the averager.
// Signals coalesce: signaling while one is already pending is a no-op, so
// the producer never blocks and the consumer sees at least one wakeup per
// completed batch.
type Notifier struct {
	ch chan struct{}
}

// NewNotifier creates an idle notifier with no signal pending.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Signal posts a wakeup without blocking. Safe to call from the tick path.
func (n *Notifier) Signal() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Wait blocks until a signal arrives or ctx is done, consuming the pending
// signal on return.
func (n *Notifier) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-n.ch:
		return nil
	}
}
