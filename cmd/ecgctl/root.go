package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

type rootOptions struct {
	Verbose bool
	Presets string // catálogo YAML; vacío usa el embebido
	Preset  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "ecgctl",
		Short:         "ECG waveform synthesizer",
		Long:          "Synthesizes ECG traces from per-wave parameters and renders, exports or plays them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return wrapExit(exitCommandError, "invalid flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Presets, "presets", "", "preset catalog (YAML)")
	cmd.PersistentFlags().StringVarP(&opts.Preset, "preset", "p", "", "preset name (default: built-in normal rhythm)")

	cmd.AddCommand(newPresetsCommand(opts))
	cmd.AddCommand(newRenderCommand(opts))
	cmd.AddCommand(newExportCommand(opts))
	cmd.AddCommand(newRateCommand(opts))
	cmd.AddCommand(newConsoleCommand(opts))
	cmd.AddCommand(newListenCommand(opts))

	return cmd
}

func (o *rootOptions) catalog() (*preset.Catalog, error) {
	var (
		c   *preset.Catalog
		err error
	)
	if o.Presets == "" {
		c, err = preset.Builtin()
	} else {
		c, err = preset.Load(o.Presets)
	}
	if err != nil {
		return nil, wrapExit(exitCommandError, "failed to load presets", err)
	}
	return c, nil
}

// settings resuelve --preset sobre la configuración por defecto.
func (o *rootOptions) settings() (signal.Settings, error) {
	s := signal.DefaultSettings()
	if o.Preset == "" {
		return s, nil
	}
	c, err := o.catalog()
	if err != nil {
		return s, err
	}
	p, err := c.Lookup(o.Preset)
	if err != nil {
		return s, wrapExit(exitCommandError, "failed to select preset", err)
	}
	slog.Debug("preset loaded", "name", p.Name, "category", p.Category)
	return p.Apply(s), nil
}

// record genera seconds segundos de señal a fs Hz.
func record(s signal.Settings, fs, seconds float64) []float64 {
	sim := signal.NewECGSim(fs, s)
	n := int(seconds * fs)
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(sim.Next())
	}
	return out
}
