package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivanzxc/go-ecg-stream/internal/render"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

type renderOptions struct {
	Width   float64
	Height  float64
	Speed   float64
	Scale   float64
	Pointer float64
	Erase   float64
	Output  string
}

func newRenderCommand(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	def := signal.DefaultCanvas()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one window of the trace as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := root.settings()
			if err != nil {
				return err
			}
			if opts.Scale > 0 {
				s.VerticalScale = opts.Scale
			}

			gen := signal.NewGenerator(signal.Canvas{Width: opts.Width, Height: opts.Height, Speed: opts.Speed})
			var st signal.State
			pts := gen.Generate(s, &st)

			trace := render.Trace(pts)
			if opts.Pointer > 0 {
				// segundo barrido: la ventana nueva entra por la izquierda
				trace = render.Frame(pts, gen.Generate(s, &st), opts.Pointer, opts.Erase)
			}
			slog.Debug("rendered", "points", len(pts), "cycles", st.Cycles)

			var w io.Writer = cmd.OutOrStdout()
			if opts.Output != "" && opts.Output != "-" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return wrapExit(exitCommandError, "failed to create output", err)
				}
				defer f.Close()
				w = f
			}
			if err := render.WriteSVG(w, gen.Canvas(), trace); err != nil {
				return wrapExit(exitFailure, "failed to write svg", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.Width, "width", def.Width, "canvas width (px)")
	cmd.Flags().Float64Var(&opts.Height, "height", def.Height, "canvas height (px)")
	cmd.Flags().Float64Var(&opts.Speed, "speed", def.Speed, "sweep speed (px/s)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "vertical scale (px/mV)")
	cmd.Flags().Float64Var(&opts.Pointer, "pointer", 0, "sweep pointer x (px); 0 draws a single window")
	cmd.Flags().Float64Var(&opts.Erase, "erase", 6, "eraser half width (px)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}
