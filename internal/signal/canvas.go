package signal

// Point es una muestra lista para dibujar.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Canvas es la geometría de la pantalla: ancho y alto en px, velocidad de
// barrido en px/s. La velocidad es también la frecuencia de muestreo.
type Canvas struct {
	Width  float64
	Height float64
	Speed  float64
}

func DefaultCanvas() Canvas {
	return Canvas{Width: 1000, Height: 400, Speed: 150}
}

// Window es la duración en segundos que cubre una llamada a Generate.
func (c Canvas) Window() float64 { return c.Width / c.Speed }

func (c Canvas) Centerline() float64 { return c.Height / 2 }

// Point convierte (t, mV) en coordenadas de pantalla.
func (c Canvas) Point(t, mv, scale float64) Point {
	return Point{X: t * c.Speed, Y: c.Centerline() - mv*scale}
}

// Voltage invierte Point: mV de un punto ya dibujado.
func (c Canvas) Voltage(p Point, scale float64) float64 {
	if scale == 0 {
		return 0
	}
	return (c.Centerline() - p.Y) / scale
}
