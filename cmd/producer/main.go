package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	osSignal "os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
	"github.com/ivanzxc/go-ecg-stream/internal/stream"
)

func main() {

	var (
		natsURL    = flag.String("nats", "nats://127.0.0.1:4222", "NATS url")
		subject    = flag.String("subject", stream.SubjectWave, "subject")
		fs         = flag.Int("fs", 250, "sampling rate Hz")
		hr         = flag.Float64("hr", 0, "heart rate bpm (0 = preset value)")
		batch      = flag.Int("batch", 10, "samples per message")
		presetName = flag.String("preset", "normal sinus rhythm", "patient preset")
		presets    = flag.String("presets", "", "presets YAML file (default: builtin)")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	catalog, err := loadCatalog(*presets)
	if err != nil {
		logger.Error("load presets", "error", err)
		os.Exit(1)
	}
	p, err := catalog.Lookup(*presetName)
	if err != nil {
		logger.Error("load presets", "error", err)
		os.Exit(1)
	}

	settings := p.Apply(signal.DefaultSettings())
	if *hr > 0 {
		settings.Params.HeartRate = *hr
	}

	nc, err := stream.Connect(*natsURL, "ecg-producer")
	if err != nil {
		logger.Error("connect", "nats", *natsURL, "error", err)
		os.Exit(1)
	}
	defer nc.Drain()

	sim := signal.NewECGSim(float64(*fs), settings)
	session := uuid.NewString()

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 1)
	osSignal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer osSignal.Stop(ch)

	go func() {
		<-ch
		cancel()
	}()

	period := time.Second / time.Duration(*fs)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	logger.Info("producer running",
		"session", session, "preset", p.Name, "hr", settings.Params.HeartRate,
		"fs", *fs, "subject", *subject)

	buffer := make([]float32, 0, *batch)

	for {
		select {
		case <-ctx.Done():
			logger.Info("producer stopping", "cycles", sim.State().Cycles)
			return

		case <-ticker.C:
			buffer = append(buffer, sim.Next())

			if len(buffer) >= *batch {
				if err := nc.Publish(*subject, stream.EncodeFrame(buffer)); err != nil {
					logger.Warn("publish", "subject", *subject, "error", err)
				}
				buffer = buffer[:0]
			}
		}
	}
}

func loadCatalog(path string) (*preset.Catalog, error) {
	if path == "" {
		return preset.Builtin()
	}
	return preset.Load(path)
}
