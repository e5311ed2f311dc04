package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

func synth(s signal.Settings, fs, seconds float64) []float64 {
	sim := signal.NewECGSim(fs, s)
	out := make([]float64, int(fs*seconds))
	for i := range out {
		out[i] = float64(sim.Next())
	}
	return out
}

func TestEstimateRate_Synthetic(t *testing.T) {
	for _, hr := range []float64{50, 70, 110} {
		s := signal.DefaultSettings()
		s.Params.HeartRate = hr
		got := EstimateRate(synth(s, 250, 10), 250)
		assert.InDelta(t, hr, got, 2, "hr=%v", hr)
	}
}

func TestEstimateRate_Sine(t *testing.T) {
	const fs = 200.0
	x := make([]float64, 2000)
	for i := range x {
		x[i] = math.Sin(2 * math.Pi * 1.5 * float64(i) / fs)
	}
	assert.InDelta(t, 90, EstimateRate(x, fs), 1.5)
}

func TestEstimateRate_Degenerate(t *testing.T) {
	assert.Zero(t, EstimateRate(nil, 250))
	assert.Zero(t, EstimateRate(make([]float64, 100), 250), "too short")
	assert.Zero(t, EstimateRate(make([]float64, 5000), 250), "flat")
	assert.Zero(t, EstimateRate(make([]float64, 5000), 0))
}
