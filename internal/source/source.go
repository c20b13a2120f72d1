// Package source provides analog sample sources for the sampling pipeline.
package source

// Source is an analog input the sampler reads once per tick. Read must be
// fast and non-blocking: it is called on the sampling hot path.
type Source interface {
	// Read returns the current raw sample value.
	Read() uint32
	// Name identifies the source in the UI.
	Name() string
	// Close releases any hardware held by the source.
	Close() error
}
