package app

import "time"

// TickMsg triggers a frame update; the model polls the pipeline's published
// average and counters on each one.
type TickMsg time.Time

// SourceErrorMsg reports sample source errors.
type SourceErrorMsg struct {
	Err error
}
