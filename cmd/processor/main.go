package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	osSignal "os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ivanzxc/go-ecg-stream/internal/analysis"
	"github.com/ivanzxc/go-ecg-stream/internal/store"
	"github.com/ivanzxc/go-ecg-stream/internal/stream"
)

func main() {

	var (
		natsURL = flag.String("nats", "nats://127.0.0.1:4222", "NATS url")
		in      = flag.String("in", stream.SubjectWave, "input subject")
		out     = flag.String("out", stream.SubjectParams, "output subject")
		fs      = flag.Float64("fs", 250, "sampling rate of the input stream Hz")
		dbPath  = flag.String("db", "", "SQLite file for HR readings (empty = disabled)")
		session = flag.String("session", "default", "session recorded with each reading")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	nc, err := stream.Connect(*natsURL, "ecg-processor")
	if err != nil {
		logger.Error("connect", "nats", *natsURL, "error", err)
		os.Exit(1)
	}
	defer nc.Drain()

	var st *store.Store
	if *dbPath != "" {
		st, err = store.Open(*dbPath)
		if err != nil {
			logger.Error("open store", "db", *dbPath, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := st.Close(); err != nil {
				logger.Error("close store", "error", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	detector := analysis.NewHRDetector()
	var n int64

	// NATS entrega los mensajes de una suscripción en orden y de a uno
	_, err = nc.Subscribe(*in, func(msg *nats.Msg) {
		samples, err := stream.DecodeFrame(msg.Data)
		if err != nil {
			logger.Warn("drop frame", "subject", msg.Subject, "error", err)
			return
		}

		for _, v := range samples {
			bpm, ok := detector.Process(v, analysis.SampleTime(n, *fs))
			n++
			if !ok {
				continue
			}

			now := time.Now()
			param := stream.ParamMsg{
				Subject: *out,
				Session: *session,
				Ts:      now.UnixMilli(),
				HR:      bpm,
			}
			b, err := param.Marshal()
			if err != nil {
				logger.Error("marshal params", "error", err)
				continue
			}
			if err := nc.Publish(*out, b); err != nil {
				logger.Warn("publish", "subject", *out, "error", err)
			}

			if st != nil {
				if err := st.Record(ctx, store.Reading{Session: *session, At: now, BPM: bpm}); err != nil {
					logger.Error("record reading", "error", err)
				}
			}

			logger.Debug("HR detected", "bpm", bpm)
		}
	})

	if err != nil {
		logger.Error("subscribe", "subject", *in, "error", err)
		os.Exit(1)
	}

	logger.Info("processor running", "in", *in, "out", *out, "fs", *fs, "session", *session)

	ch := make(chan os.Signal, 1)
	osSignal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch
	logger.Info("processor stopped")
}
