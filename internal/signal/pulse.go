package signal

import "math"

// Pulse es un coseno elevado de altura h y ancho b que empieza en t0.
// Vale 0 en ambos extremos y h en el punto medio.
func Pulse(t, h, b, t0 float64) float64 {
	if b == 0 || t < t0 || t > t0+b {
		return 0
	}
	return (h / 2) * (1 - math.Cos(2*math.Pi*(t-t0)/b))
}
