package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	osSignal "os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nats-io/nats.go"

	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/stream"
)

func main() {

	var (
		natsURL = flag.String("nats", "nats://127.0.0.1:4222", "NATS url")
		addr    = flag.String("addr", ":8080", "http address")
		web     = flag.String("web", "./web", "static files directory")
		presets = flag.String("presets", "", "preset catalog (YAML) for /trace.svg")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	catalog, err := preset.Builtin()
	if *presets != "" {
		catalog, err = preset.Load(*presets)
	}
	if err != nil {
		logger.Error("presets", "error", err)
		os.Exit(1)
	}

	nc, err := stream.Connect(*natsURL, "ecg-server")
	if err != nil {
		logger.Error("connect", "nats", *natsURL, "error", err)
		os.Exit(1)
	}
	defer nc.Drain()

	hub := newHub()

	var waves, params int64

	// ondas: binario tal cual
	if _, err := nc.Subscribe(stream.SubjectWave, func(msg *nats.Msg) {
		atomic.AddInt64(&waves, 1)
		hub.broadcast(websocket.BinaryMessage, msg.Data)
	}); err != nil {
		logger.Error("subscribe", "subject", stream.SubjectWave, "error", err)
		os.Exit(1)
	}

	// parámetros: JSON
	if _, err := nc.Subscribe(stream.SubjectParams, func(msg *nats.Msg) {
		atomic.AddInt64(&params, 1)
		hub.broadcast(websocket.TextMessage, msg.Data)
	}); err != nil {
		logger.Error("subscribe", "subject", stream.SubjectParams, "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(*web)))

	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "wave_messages %d\n", atomic.LoadInt64(&waves))
		fmt.Fprintf(w, "param_messages %d\n", atomic.LoadInt64(&params))
		fmt.Fprintf(w, "clients %d\n", hub.len())
	})

	mux.HandleFunc("/ws", hub.serveWS(logger))
	mux.HandleFunc("/trace.svg", traceHandler(catalog, logger))

	server := &http.Server{Addr: *addr, Handler: mux}

	go func() {
		logger.Info("server running", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen", "error", err)
		}
	}()

	ch := make(chan os.Signal, 1)
	osSignal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	<-ch

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("server stopped")
}
