package source

import (
	"fmt"
	"sync"
	"sync/atomic"

	"adc-monitor.klederson.com/internal/config"
	"tinygo.org/x/bluetooth"
)

// BLESource uses received signal strength as the analog input: a background
// scan tracks the strongest nearby BLE advertiser and every advertisement
// from it updates the current sample. Read never touches the radio; it only
// loads the latest value, so the sampling tick stays non-blocking.
type BLESource struct {
	adapter *bluetooth.Adapter
	latest  atomic.Uint32
	running atomic.Bool

	mu      sync.Mutex
	mac     string // advertiser currently tracked
	device  string
	strong  int16 // last RSSI seen from the tracked advertiser
}

// NewBLESource creates a source on the default adapter.
func NewBLESource() *BLESource {
	return &BLESource{adapter: bluetooth.DefaultAdapter}
}

// Start enables the adapter and begins scanning in a goroutine.
func (s *BLESource) Start() error {
	if err := s.adapter.Enable(); err != nil {
		return fmt.Errorf("failed to enable BLE adapter: %w (try running with sudo or setcap cap_net_admin+ep)", err)
	}

	s.latest.Store(rssiToSample(config.BLERSSIFloor))
	s.running.Store(true)
	go func() {
		_ = s.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if !s.running.Load() {
				return
			}
			s.observe(result)
		})
	}()
	return nil
}

func (s *BLESource) observe(result bluetooth.ScanResult) {
	mac := result.Address.String()

	s.mu.Lock()
	switch {
	case s.mac == "" || mac == s.mac:
		// First advertiser seen, or the one we are already tracking.
	case result.RSSI > s.strong+6:
		// A clearly stronger advertiser takes over. The hysteresis keeps
		// the source from flapping between two devices of similar strength.
	default:
		s.mu.Unlock()
		return
	}
	s.mac = mac
	s.strong = result.RSSI

	name := result.LocalName()
	if name == "" {
		mfrs := result.ManufacturerData()
		if len(mfrs) > 0 {
			if mfrName := lookupManufacturer(mfrs[0].CompanyID); mfrName != "" {
				name = mfrName + " " + mac[12:]
			}
		}
	}
	if name != "" {
		s.device = name
	}
	s.mu.Unlock()

	s.latest.Store(rssiToSample(result.RSSI))
}

// Read returns the latest sample derived from the tracked advertiser's RSSI.
func (s *BLESource) Read() uint32 {
	return s.latest.Load()
}

// Name implements Source.
func (s *BLESource) Name() string { return "ble" }

// TrackedDevice returns the advertiser currently feeding the source, or ""
// if none has been seen yet.
func (s *BLESource) TrackedDevice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.device != "" {
		return s.device
	}
	return s.mac
}

// Close stops the scan.
func (s *BLESource) Close() error {
	s.running.Store(false)
	return s.adapter.StopScan()
}

// rssiToSample rebases a dBm reading onto the unsigned sample scale:
// BLERSSIFloor maps to 0 and 0 dBm to full scale.
func rssiToSample(rssi int16) uint32 {
	v := int(rssi) - config.BLERSSIFloor
	if v < 0 {
		v = 0
	}
	span := -config.BLERSSIFloor
	sample := v * config.SampleMax / span
	if sample > config.SampleMax {
		sample = config.SampleMax
	}
	return uint32(sample)
}

// lookupManufacturer returns a short vendor name for a Bluetooth SIG
// company ID, or "" if unknown.
func lookupManufacturer(companyID uint16) string {
	return companyNames[companyID]
}

var companyNames = map[uint16]string{
	0x004C: "Apple",
	0x0006: "Microsoft",
	0x00E0: "Google",
	0x0075: "Samsung",
	0x0310: "Xiaomi",
	0x0157: "Huawei",
	0x038F: "Garmin",
	0x0059: "Nordic",
	0x000D: "Texas Inst.",
	0x015D: "Espressif",
	0x02FF: "Tile",
	0x03DA: "Fitbit",
}
