package config

import "time"

const (
	// Sampling core
	SamplePeriod = 100 * time.Millisecond // 10 Hz sample cadence
	BatchSize    = 10                     // samples per published average
	SampleBits   = 12                     // ADC resolution for mock/display scaling
	SampleMax    = (1 << SampleBits) - 1  // 4095 full scale

	// BLE source
	BLERSSIFloor = -128 // dBm mapped to sample 0

	// Scope display
	HistoryLen = 120 // published averages kept for the sparkline
	TargetFPS  = 30  // frames per second

	// Console
	ConsoleScrollback = 200   // console lines kept
	AvgCommand        = "avg" // prints the published average

	// App
	AppName    = "ADC-MONITOR"
	AppVersion = "1.0"
)
