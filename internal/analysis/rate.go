package analysis

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Rango fisiológico buscado por EstimateRate.
const (
	MinBPM = 30.0
	MaxBPM = 210.0
)

// EstimateRate estima la frecuencia cardíaca (BPM) de una señal muestreada
// a fs Hz a partir del pico de la autocorrelación, calculada por FFT.
// Devuelve 0 si la señal es más corta que dos períodos de MinBPM o plana.
func EstimateRate(samples []float64, fs float64) float64 {
	n := len(samples)
	maxLag := int(math.Ceil(60 / MinBPM * fs))
	minLag := int(math.Floor(60 / MaxBPM * fs))
	if fs <= 0 || n < 2*maxLag || minLag < 1 {
		return 0
	}

	var mean float64
	for _, v := range samples {
		mean += v
	}
	mean /= float64(n)

	size := 1
	for size < 2*n {
		size <<= 1
	}
	padded := make([]float64, size)
	for i, v := range samples {
		padded[i] = v - mean
	}

	power := fft.FFTReal(padded)
	for i, c := range power {
		power[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	acf := fft.IFFT(power)

	if real(acf[0]) <= 0 {
		return 0
	}

	best, bestLag := math.Inf(-1), 0
	for lag := minLag; lag <= maxLag && lag < n; lag++ {
		if v := real(acf[lag]); v > best {
			best, bestLag = v, lag
		}
	}
	if bestLag == 0 {
		return 0
	}
	return 60 * fs / float64(bestLag)
}
