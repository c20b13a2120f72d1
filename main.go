package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"adc-monitor.klederson.com/internal/app"
	"adc-monitor.klederson.com/internal/config"
	"adc-monitor.klederson.com/internal/sampling"
	"adc-monitor.klederson.com/internal/source"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDemo    bool
	flagSource  string
	flagIIOPath string
	flagPeriod  time.Duration
	flagBatch   int
	flagLogFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "adc-monitor",
		Short: "ADC Monitor - Terminal analog signal sampler with batch averaging",
		Long: `ADC Monitor samples an analog source at a fixed 10 Hz cadence, collects
samples into batches and publishes the mean of each batch, rendered as a
live trace with an interactive console (type "avg" to print the value).

Sources: mock (synthetic waveform, no hardware), iio (Linux industrial-IO
ADC channel), ble (signal strength of the strongest nearby BLE advertiser;
requires sudo or CAP_NET_ADMIN).`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with a synthetic signal (same as --source mock)")
	rootCmd.Flags().StringVar(&flagSource, "source", "mock", "Sample source: mock, iio or ble")
	rootCmd.Flags().StringVar(&flagIIOPath, "iio-path", "", "IIO channel file (default: first in_voltage*_raw found)")
	rootCmd.Flags().DurationVar(&flagPeriod, "period", config.SamplePeriod, "Sampling period")
	rootCmd.Flags().IntVar(&flagBatch, "batch", config.BatchSize, "Samples per published average")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	src, err := newSource(log)
	if err != nil {
		return err
	}

	pipeline := sampling.New(sampling.Config{
		Source:    src,
		Period:    flagPeriod,
		BatchSize: flagBatch,
		Log:       log,
	})

	model := app.New(pipeline, src)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Start sampling with a reference to the tea program
	model.StartPipeline(p)

	_, err = p.Run()
	return err
}

func newSource(log *logrus.Logger) (source.Source, error) {
	if flagDemo {
		flagSource = "mock"
	}

	switch flagSource {
	case "mock":
		return source.NewMockSource(), nil

	case "iio":
		path := flagIIOPath
		if path == "" && source.IIOAvailable() {
			path = source.DefaultIIOPath()
		}
		if path == "" {
			fmt.Fprintln(os.Stderr, "No IIO ADC channel found under /sys/bus/iio/devices.")
			fmt.Fprintln(os.Stderr, "Pass --iio-path explicitly, or use --demo for a synthetic signal.")
			return nil, fmt.Errorf("no IIO channel available")
		}
		return source.NewIIOSource(path)

	case "ble":
		src := source.NewBLESource()
		if err := src.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "\nError: %v\n\n", err)
			fmt.Fprintln(os.Stderr, "BLE scanning requires elevated permissions.")
			fmt.Fprintln(os.Stderr, "Try one of:")
			fmt.Fprintln(os.Stderr, "  sudo ./adc-monitor --source ble")
			fmt.Fprintln(os.Stderr, "  sudo setcap cap_net_admin+ep ./adc-monitor")
			fmt.Fprintln(os.Stderr, "  ./adc-monitor --demo    (synthetic signal, no hardware needed)")
			return nil, err
		}
		log.Info("BLE source started")
		return src, nil
	}

	return nil, fmt.Errorf("unknown source %q (want mock, iio or ble)", flagSource)
}

func newLogger(path string) (*logrus.Logger, func(), error) {
	log := logrus.New()
	if path == "" {
		log.SetOutput(io.Discard)
		return log, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	return log, func() { _ = f.Close() }, nil
}
