package main

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/render"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

// Tope de la imagen pedida por query: la ventana y la grilla crecen con el
// ancho y el alto.
const (
	maxTraceWidth  = 4000
	maxTraceHeight = 1600
)

// traceHandler dibuja una ventana del preset pedido como SVG:
// /trace.svg?preset=<nombre>&width=<px>&height=<px>&scale=<px/mV>
func traceHandler(catalog *preset.Catalog, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		s := signal.DefaultSettings()
		if name := q.Get("preset"); name != "" {
			p, err := catalog.Lookup(name)
			if err != nil {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			s = p.Apply(s)
		}

		c := signal.DefaultCanvas()
		limits := []struct {
			key string
			dst *float64
			max float64
		}{
			{"width", &c.Width, maxTraceWidth},
			{"height", &c.Height, maxTraceHeight},
			{"scale", &s.VerticalScale, math.MaxFloat64},
		}
		for _, l := range limits {
			v := q.Get(l.key)
			if v == "" {
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil || !(f > 0) || f > l.max {
				http.Error(w, "invalid "+l.key, http.StatusBadRequest)
				return
			}
			*l.dst = f
		}

		gen := signal.NewGenerator(c)
		var st signal.State
		pts := gen.Generate(s, &st)

		w.Header().Set("Content-Type", "image/svg+xml")
		if err := render.WriteSVG(w, gen.Canvas(), render.Trace(pts)); err != nil {
			logger.Warn("trace", "error", err)
		}
	}
}
