// Package render convierte puntos del generador en trazos SVG.
package render

import (
	"strconv"
	"strings"

	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

// PathData arma el atributo d de un <path>. Un punto nil corta el trazo y el
// siguiente punto abre un subpath nuevo.
func PathData(pts []*signal.Point) string {
	var b strings.Builder
	for i, p := range pts {
		if p == nil {
			continue
		}
		if i == 0 || pts[i-1] == nil {
			b.WriteString("M")
		} else {
			b.WriteString(" L")
		}
		b.WriteString(" ")
		b.WriteString(num(p.X))
		b.WriteString(" ")
		b.WriteString(num(p.Y))
	}
	return b.String()
}

// Trace convierte una ventana continua en la forma que acepta PathData.
func Trace(pts []signal.Point) []*signal.Point {
	out := make([]*signal.Point, len(pts))
	for i := range pts {
		out[i] = &pts[i]
	}
	return out
}

// Frame compone lo que muestra el monitor durante un barrido: la ventana nueva
// hasta pointer+erase (el borrador ya la copió) y la anterior a la derecha.
// Donde la ventana que corresponde no tiene punto queda un hueco.
func Frame(prev, next []signal.Point, pointer, erase float64) []*signal.Point {
	n := len(prev)
	if len(next) > n {
		n = len(next)
	}
	out := make([]*signal.Point, n)
	for i := 0; i < n; i++ {
		var x float64
		if i < len(next) {
			x = next[i].X
		} else {
			x = prev[i].X
		}
		switch {
		case x <= pointer+erase:
			if i < len(next) {
				out[i] = &next[i]
			}
		case i < len(prev):
			out[i] = &prev[i]
		}
	}
	return out
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
