package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/analysis"
)

type rateOptions struct {
	Rate    float64
	Seconds float64
}

func newRateCommand(root *rootOptions) *cobra.Command {
	opts := &rateOptions{}

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Measure the heart rate of the synthesized trace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Rate <= 0 || opts.Seconds <= 0 {
				return wrapExit(exitCommandError, "--fs and --seconds must be positive", nil)
			}
			s, err := root.settings()
			if err != nil {
				return err
			}

			samples := record(s, opts.Rate, opts.Seconds)

			det := analysis.NewHRDetector()
			var bpm int
			for i, v := range samples {
				if b, ok := det.Process(float32(v), analysis.SampleTime(int64(i), opts.Rate)); ok {
					bpm = b
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configured=%g autocorr=%.1f detector=%d beats=%d\n",
				s.Params.HeartRate, analysis.EstimateRate(samples, opts.Rate), bpm, det.Peaks())
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Rate, "fs", 250, "sample rate (Hz)")
	cmd.Flags().Float64Var(&opts.Seconds, "seconds", 20, "duration")

	return cmd
}
