package main

import (
	"fmt"
	"log/slog"
	"os"
	osSignal "os/signal"
	"syscall"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/signal"
	"github.com/ivanzxc/go-ecg-stream/internal/sonify"
)

type listenOptions struct {
	Rate     float64
	Audio    int
	Duration time.Duration
}

func newListenCommand(root *rootOptions) *cobra.Command {
	opts := &listenOptions{}

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Play a beep on every detected heartbeat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.settings()
			if err != nil {
				return err
			}

			sr := beep.SampleRate(opts.Audio)
			mon := sonify.NewMonitor(signal.NewECGSim(opts.Rate, s), sr)
			if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
				return wrapExit(exitFailure, "failed to open audio device", err)
			}
			speaker.Play(mon)
			slog.Info("listening", "bpm", s.Params.HeartRate, "fs", opts.Rate)

			ch := make(chan os.Signal, 1)
			osSignal.Notify(ch, os.Interrupt, syscall.SIGTERM)
			defer osSignal.Stop(ch)

			var timeout <-chan time.Time
			if opts.Duration > 0 {
				timeout = time.After(opts.Duration)
			}
			select {
			case <-ch:
			case <-timeout:
			}

			speaker.Lock()
			beeps, bpm := mon.Beeps(), mon.BPM()
			speaker.Unlock()
			speaker.Clear()

			fmt.Fprintf(cmd.OutOrStdout(), "beeps=%d bpm=%d\n", beeps, bpm)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Rate, "fs", 250, "ECG sample rate (Hz)")
	cmd.Flags().IntVar(&opts.Audio, "audio-rate", 44100, "audio sample rate (Hz)")
	cmd.Flags().DurationVar(&opts.Duration, "duration", 0, "stop after this long (0 waits for Ctrl-C)")

	return cmd
}
