package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

const (
	smallGrid = 8
	largeGrid = smallGrid * 5
)

// WriteSVG escribe un documento con la grilla de papel milimetrado y el trazo.
func WriteSVG(w io.Writer, c signal.Canvas, pts []*signal.Point) error {
	width, height := int(c.Width), int(c.Height)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)

	b.WriteString(`<g class="grid-group">` + "\n")
	for x := 0; x <= width; x += smallGrid {
		gridLine(&b, x, 0, x, height, x%largeGrid == 0)
	}
	for y := 0; y <= height; y += smallGrid {
		gridLine(&b, 0, y, width, y, y%largeGrid == 0)
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<path class="waveform-path" d="%s" stroke="#ef4444" fill="none" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"/>`+"\n",
		PathData(pts))
	b.WriteString("</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func gridLine(b *strings.Builder, x1, y1, x2, y2 int, major bool) {
	stroke, width := "#f0f0f0", "0.5"
	if major {
		stroke, width = "#ddd", "1"
	}
	fmt.Fprintf(b, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%s"/>`+"\n",
		x1, y1, x2, y2, stroke, width)
}
