package analysis

import "time"

// HRDetector detecta picos R por cruce ascendente de umbral.
type HRDetector struct {
	threshold   float32
	refractory  time.Duration
	lastPeak    time.Duration
	hasPeak     bool
	lastValue   float32
	initialized bool
	peaks       int
}

func NewHRDetector() *HRDetector {
	return &HRDetector{
		threshold:  0.6, // mV
		refractory: 200 * time.Millisecond,
	}
}

// WithThreshold cambia el umbral en mV.
func (h *HRDetector) WithThreshold(mv float32) *HRDetector {
	h.threshold = mv
	return h
}

// Process recibe una muestra y su instante desde el inicio del stream.
// Devuelve BPM cuando detecta un latido con un pico previo conocido.
func (h *HRDetector) Process(value float32, at time.Duration) (int, bool) {
	if !h.initialized {
		h.initialized = true
		h.lastValue = value
		return 0, false
	}

	crossed := h.lastValue < h.threshold && value >= h.threshold
	h.lastValue = value
	if !crossed {
		return 0, false
	}

	if h.hasPeak && at-h.lastPeak <= h.refractory {
		return 0, false
	}

	h.peaks++
	prev, had := h.lastPeak, h.hasPeak
	h.lastPeak, h.hasPeak = at, true
	if !had {
		return 0, false
	}

	rr := (at - prev).Seconds()
	return int(60.0 / rr), true
}

// Peaks es la cantidad de picos aceptados desde el último Reset.
func (h *HRDetector) Peaks() int { return h.peaks }

func (h *HRDetector) Reset() {
	*h = HRDetector{threshold: h.threshold, refractory: h.refractory}
}

// SampleTime es el instante de la muestra n a fs Hz.
func SampleTime(n int64, fs float64) time.Duration {
	return time.Duration(float64(n) / fs * float64(time.Second))
}
