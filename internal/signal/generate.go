package signal

import "math"

// Generator produce ventanas de ECG para una geometría fija.
type Generator struct {
	canvas Canvas
}

// NewGenerator usa DefaultCanvas para las dimensiones no positivas o no
// finitas: una ventana infinita no termina nunca.
func NewGenerator(c Canvas) *Generator {
	def := DefaultCanvas()
	if !finite(c.Width) {
		c.Width = def.Width
	}
	if !finite(c.Height) {
		c.Height = def.Height
	}
	if !finite(c.Speed) {
		c.Speed = def.Speed
	}
	return &Generator{canvas: c}
}

func finite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func (g *Generator) Canvas() Canvas { return g.canvas }

// Cycles sintetiza ciclos completos hasta cubrir la ventana del canvas y deja
// st listo para la próxima llamada. El reloj local empieza siempre en 0.
func (g *Generator) Cycles(s Settings, st *State) []Cycle {
	window := g.canvas.Window()
	dt := 1 / g.canvas.Speed

	var out []Cycle
	for elapsed := 0.0; elapsed <= window; {
		c := synthesize(schedule(&s, st), elapsed, dt)
		if len(c.Samples) == 0 {
			break
		}
		out = append(out, c)
		elapsed += c.Duration
	}
	return out
}

// Generate devuelve los puntos de una ventana completa; muta st.
func (g *Generator) Generate(s Settings, st *State) []Point {
	cycles := g.Cycles(s, st)

	n := 0
	for _, c := range cycles {
		n += len(c.Samples)
	}
	pts := make([]Point, 0, n)
	for _, c := range cycles {
		for _, smp := range c.Samples {
			pts = append(pts, g.canvas.Point(smp.T, smp.MV, s.VerticalScale))
		}
	}
	return pts
}
