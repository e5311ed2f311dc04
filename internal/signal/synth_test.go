package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalBeat(p Params) beat {
	return beat{params: p, source: NormalBeat, pCount: p.NP, rCount: 1}
}

func waves(c Cycle) map[Wave]int {
	m := map[Wave]int{}
	for _, s := range c.Samples {
		m[s.Wave]++
	}
	return m
}

func TestSynthesize_DurationMatchesHeartRate(t *testing.T) {
	for _, hr := range []float64{40, 70, 123, 180} {
		p := DefaultParams()
		p.HeartRate = hr
		c := synthesize(normalBeat(p), 0, 1.0/150)
		assert.InDelta(t, 60/hr, c.Duration, 1e-9, "hr=%v", hr)
	}

	p := DefaultParams()
	p.NP = 3
	c := synthesize(normalBeat(p), 2, 1.0/150)
	assert.InDelta(t, 60/p.HeartRate, c.Duration, 1e-9)

	b := normalBeat(DefaultParams())
	b.rCount = 0
	c = synthesize(b, 0, 1.0/150)
	assert.InDelta(t, 60/70.0, c.Duration, 1e-9)
}

func TestSynthesize_NonPositiveHeartRateFallsBackTo60(t *testing.T) {
	for _, hr := range []float64{0, -20, math.NaN()} {
		p := DefaultParams()
		p.HeartRate = hr
		c := synthesize(normalBeat(p), 0, 1.0/150)
		assert.InDelta(t, 1.0, c.Duration, 1e-9, "hr=%v", hr)
		assert.NotEmpty(t, c.Samples, "hr=%v", hr)
	}
}

func TestSynthesize_SamplesCoverCycle(t *testing.T) {
	dt := 1.0 / 150
	c := synthesize(normalBeat(DefaultParams()), 1.5, dt)

	require.NotEmpty(t, c.Samples)
	assert.Equal(t, 1.5, c.Samples[0].T)
	last := c.Samples[len(c.Samples)-1].T
	assert.Less(t, last, c.Start+c.Duration)
	assert.GreaterOrEqual(t, last+dt, c.Start+c.Duration-1e-9)

	w := waves(c)
	for _, wv := range []Wave{WaveP, WaveQ, WaveR, WaveS, WaveT, WaveNone} {
		assert.Positive(t, w[wv], "wave %s", wv)
	}
}

func TestSynthesize_DroppedQRS(t *testing.T) {
	b := normalBeat(DefaultParams())
	b.rCount = 0
	w := waves(synthesize(b, 0, 1.0/250))

	assert.Zero(t, w[WaveQ])
	assert.Zero(t, w[WaveR])
	assert.Zero(t, w[WaveS])
	assert.Positive(t, w[WaveP])
	assert.Positive(t, w[WaveT])
}

func TestSynthesize_InvalidSpanIsEmpty(t *testing.T) {
	c := synthesize(beat{params: Params{HeartRate: 70}, pCount: 0, rCount: 1}, 0, 1.0/150)
	assert.Empty(t, c.Samples)
}

func TestLayout_RepeatedQRS(t *testing.T) {
	b := normalBeat(DefaultParams())
	b.rCount = 3
	l := newLayout(b, 0)

	require.Len(t, l.r, 3)
	require.Len(t, l.s, 3)
	require.Len(t, l.q, 1)

	lpq := DefaultParams().LPQ * (l.bp / DefaultParams().BP)
	assert.InDelta(t, l.s[0]+l.bs+lpq/2+l.bq, l.r[1], 1e-12)
	assert.InDelta(t, l.r[2]-l.bq, l.q[0], 1e-12, "only the last Q is placed")
	assert.InDelta(t, l.s[2]+l.bs+DefaultParams().LST*(l.bp/DefaultParams().BP), l.t[0], 1e-12)

	// la duración cuenta el QRS una sola vez
	assert.InDelta(t, 60/70.0, l.span, 1e-9)
}

func TestLayout_PriorityAndZeroIsAbsent(t *testing.T) {
	l := layout{
		p:   []float64{0},
		q:   []float64{0},
		bp:  1,
		bq:  1,
		h:   Params{HeightP: 0.5, HeightQ: 1},
		qrs: true,
	}

	v, w := l.at(0.5)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, WaveP, w)

	l.h.HeightP = 0
	v, w = l.at(0.5)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, WaveQ, w)

	v, w = l.at(0)
	assert.Equal(t, 0.0, v)
	assert.Equal(t, WaveNone, w)
}
