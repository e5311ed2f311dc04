// Package sonify hace audible el ECG: un pitido por cada pico R.
package sonify

import (
	"math"
	"time"

	"github.com/faiface/beep"

	"github.com/ivanzxc/go-ecg-stream/internal/analysis"
)

// Source entrega muestras en mV a Rate() Hz.
type Source interface {
	Next() float32
	Rate() float64
}

// Monitor es un beep.Streamer que consume el ECG al ritmo real y emite un
// tono corto en cada latido detectado.
type Monitor struct {
	src  Source
	det  *analysis.HRDetector
	sr   beep.SampleRate
	tone float64

	length int
	remain int
	phase  float64
	volume float64

	acc   float64
	n     int64
	beeps int
	last  int
}

func NewMonitor(src Source, sr beep.SampleRate) *Monitor {
	return &Monitor{
		src:    src,
		det:    analysis.NewHRDetector(),
		sr:     sr,
		tone:   880,
		length: sr.N(80 * time.Millisecond),
		volume: 0.5,
	}
}

// Stream implementa beep.Streamer; nunca termina.
func (m *Monitor) Stream(samples [][2]float64) (int, bool) {
	step := m.src.Rate() / float64(m.sr)
	dphi := 2 * math.Pi * m.tone / float64(m.sr)

	for i := range samples {
		m.acc += step
		for m.acc >= 1 {
			m.acc--
			m.consume()
		}

		var v float64
		if m.remain > 0 {
			v = m.volume * math.Sin(m.phase)
			m.phase += dphi
			m.remain--
		}
		samples[i][0], samples[i][1] = v, v
	}
	return len(samples), true
}

func (m *Monitor) consume() {
	peaks := m.det.Peaks()
	if bpm, ok := m.det.Process(m.src.Next(), analysis.SampleTime(m.n, m.src.Rate())); ok {
		m.last = bpm
	}
	m.n++
	if m.det.Peaks() > peaks {
		m.beeps++
		m.remain = m.length
		m.phase = 0
	}
}

func (m *Monitor) Err() error { return nil }

// Beeps es la cantidad de pitidos iniciados.
func (m *Monitor) Beeps() int { return m.beeps }

// BPM es la última frecuencia detectada, 0 antes del segundo latido.
func (m *Monitor) BPM() int { return m.last }
