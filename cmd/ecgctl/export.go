package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/export"
)

type exportOptions struct {
	Rate    int
	Seconds float64
	Output  string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the trace as a 16-bit WAV (1 count = 1 µV)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Rate <= 0 || opts.Seconds <= 0 {
				return wrapExit(exitCommandError, "--fs and --seconds must be positive", nil)
			}
			s, err := root.settings()
			if err != nil {
				return err
			}

			samples := record(s, float64(opts.Rate), opts.Seconds)

			f, err := os.Create(opts.Output)
			if err != nil {
				return wrapExit(exitCommandError, "failed to create output", err)
			}
			defer f.Close()

			if err := export.WriteWAV(f, samples, opts.Rate); err != nil {
				return wrapExit(exitFailure, "failed to export", err)
			}
			slog.Info("exported", "file", opts.Output, "samples", len(samples), "fs", opts.Rate)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Rate, "fs", 500, "sample rate (Hz)")
	cmd.Flags().Float64Var(&opts.Seconds, "seconds", 10, "duration")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "ecg.wav", "output file")

	return cmd
}
