package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IIOSource reads raw ADC values from a Linux industrial-IO channel file,
// e.g. /sys/bus/iio/devices/iio:device0/in_voltage0_raw. Each Read re-reads
// the sysfs file; the kernel serves these from memory so the tick stays
// fast enough for a 10 Hz cadence.
type IIOSource struct {
	path string
	last uint32
}

// NewIIOSource opens the channel file at path and verifies it is readable.
func NewIIOSource(path string) (*IIOSource, error) {
	s := &IIOSource{path: path}
	if _, err := s.readRaw(); err != nil {
		return nil, fmt.Errorf("failed to open IIO channel %s: %w", path, err)
	}
	return s, nil
}

// IIOAvailable reports whether any industrial-IO device is present.
func IIOAvailable() bool {
	matches, err := filepath.Glob("/sys/bus/iio/devices/iio:device*/in_voltage*_raw")
	return err == nil && len(matches) > 0
}

// DefaultIIOPath returns the first voltage channel found, or "".
func DefaultIIOPath() string {
	matches, _ := filepath.Glob("/sys/bus/iio/devices/iio:device*/in_voltage*_raw")
	if len(matches) == 0 {
		return ""
	}
	return matches[0]
}

// Read returns the current raw channel value. On a transient read failure
// the previous value is repeated rather than injecting a bogus zero.
func (s *IIOSource) Read() uint32 {
	v, err := s.readRaw()
	if err != nil {
		return s.last
	}
	s.last = v
	return v
}

func (s *IIOSource) readRaw() (uint32, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unexpected IIO value %q: %w", strings.TrimSpace(string(data)), err)
	}
	return uint32(v), nil
}

// Name implements Source.
func (s *IIOSource) Name() string { return "iio" }

// Close implements Source.
func (s *IIOSource) Close() error { return nil }
