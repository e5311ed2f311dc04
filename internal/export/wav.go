// Package export escribe trazos de ECG en formatos de audio.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// WriteWAV guarda muestras en mV como PCM mono de 16 bits a fs Hz, en
// microvoltios. Valores fuera de rango se recortan.
func WriteWAV(w io.WriteSeeker, samples []float64, fs int) error {
	if fs <= 0 {
		return fmt.Errorf("invalid sample rate %d", fs)
	}

	data := make([]int, len(samples))
	for i, mv := range samples {
		data[i] = toCount(mv)
	}

	enc := wav.NewEncoder(w, fs, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Data:           data,
		Format:         &audio.Format{NumChannels: 1, SampleRate: fs},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize wav: %w", err)
	}
	return nil
}

// toCount: una cuenta PCM por µV.
func toCount(mv float64) int {
	v := math.Round(mv * 1000)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int(v)
}
