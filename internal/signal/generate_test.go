package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_DefaultWindow(t *testing.T) {
	g := NewGenerator(DefaultCanvas())
	s := DefaultSettings()
	var st State

	cycles := g.Cycles(s, &st)
	assert.GreaterOrEqual(t, len(cycles), 7)
	assert.LessOrEqual(t, len(cycles), 8)
	for _, c := range cycles {
		assert.InDelta(t, 60/70.0, c.Duration, 1e-9)
	}

	last := cycles[len(cycles)-1]
	assert.Greater(t, last.Start+last.Duration, g.Canvas().Window())
	assert.LessOrEqual(t, last.Start, g.Canvas().Window())
	assert.Equal(t, len(cycles), st.Cycles)

	st.Reset()
	pts := g.Generate(s, &st)
	require.NotEmpty(t, pts)
	assert.Equal(t, Point{X: 0, Y: 200}, pts[0])

	// el pico R llega a 1.2 mV * 100 px/mV sobre la línea base
	minY := pts[0].Y
	for _, p := range pts {
		if p.Y < minY {
			minY = p.Y
		}
	}
	assert.InDelta(t, 200-120, minY, 10)
}

func TestGenerate_PointsFollowSampleClock(t *testing.T) {
	g := NewGenerator(DefaultCanvas())
	var st State
	pts := g.Generate(DefaultSettings(), &st)

	// dentro de un ciclo el paso es 1 px; al cambiar de ciclo puede ser menor
	for i := 1; i < len(pts); i++ {
		d := pts[i].X - pts[i-1].X
		assert.Positive(t, d, "i=%d", i)
		assert.LessOrEqual(t, d, 1+1e-6, "i=%d", i)
	}
}

func TestGenerate_ResetReproducesOutput(t *testing.T) {
	s := customSettings()
	s.RPattern = Pattern{Enabled: true, Count: 0, Interval: 4}
	s.PPattern = Pattern{Enabled: true, Count: 2, Interval: 3}
	g := NewGenerator(DefaultCanvas())

	var fresh State
	want := g.Generate(s, &fresh)

	var st State
	g.Generate(s, &st)
	g.Generate(s, &st)
	require.NotEqual(t, State{}, st)
	st.Reset()

	assert.Equal(t, want, g.Generate(s, &st))
	assert.Equal(t, fresh, st)
}

func TestGenerate_StateCarriesAcrossCalls(t *testing.T) {
	s := DefaultSettings()
	s.RPattern = Pattern{Enabled: true, Count: 0, Interval: 5}
	long := NewGenerator(Canvas{Width: 3000, Height: 400, Speed: 150})
	short := NewGenerator(DefaultCanvas())

	var a State
	var want []int
	for _, c := range long.Cycles(s, &a) {
		want = append(want, c.RCount)
	}

	var b State
	var got []int
	for len(got) < len(want) {
		for _, c := range short.Cycles(s, &b) {
			got = append(got, c.RCount)
		}
	}
	assert.Equal(t, want, got[:len(want)])
}

func TestGenerate_RPatternDropsEveryFifthQRS(t *testing.T) {
	s := DefaultSettings()
	s.RPattern = Pattern{Enabled: true, Count: 0, Interval: 5}
	g := NewGenerator(Canvas{Width: 2000, Height: 400, Speed: 250})
	var st State

	cycles := g.Cycles(s, &st)
	require.GreaterOrEqual(t, len(cycles), 10)

	for i, c := range cycles {
		w := waves(c)
		assert.Positive(t, w[WaveP], "cycle %d", i)
		assert.Positive(t, w[WaveT], "cycle %d", i)
		if (i+1)%5 == 0 {
			assert.Zero(t, c.RCount, "cycle %d", i)
			assert.Zero(t, w[WaveQ]+w[WaveR]+w[WaveS], "cycle %d", i)
		} else {
			assert.Equal(t, 1, c.RCount, "cycle %d", i)
			assert.Positive(t, w[WaveR], "cycle %d", i)
		}
	}
}

func TestGenerate_CustomBeatSources(t *testing.T) {
	s := customSettings()
	g := NewGenerator(Canvas{Width: 1500, Height: 400, Speed: 150})
	var st State

	cycles := g.Cycles(s, &st)
	require.GreaterOrEqual(t, len(cycles), 8)

	var sources []int
	for _, c := range cycles[:8] {
		sources = append(sources, c.Source)
	}
	n := NormalBeat
	assert.Equal(t, []int{0, 1, n, n, n, 0, 1, n}, sources)
}

func TestGenerate_DegenerateParamsTerminate(t *testing.T) {
	s := DefaultSettings()
	s.Params = Params{HeartRate: 70}
	g := NewGenerator(DefaultCanvas())
	var st State

	assert.Empty(t, g.Generate(s, &st))
	assert.Equal(t, 1, st.Cycles)
}

func TestNewGenerator_Defaults(t *testing.T) {
	g := NewGenerator(Canvas{})
	assert.Equal(t, DefaultCanvas(), g.Canvas())
	assert.InDelta(t, 1000.0/150, g.Canvas().Window(), 1e-12)
}

func TestNewGenerator_NonFiniteDimensions(t *testing.T) {
	inf := math.Inf(1)
	g := NewGenerator(Canvas{Width: inf, Height: math.NaN(), Speed: inf})
	assert.Equal(t, DefaultCanvas(), g.Canvas())

	var st State
	pts := g.Generate(DefaultSettings(), &st)
	assert.NotEmpty(t, pts)
	assert.LessOrEqual(t, st.Cycles, 8)
}

func TestGenerate_NaNHeartRateUses60(t *testing.T) {
	s := DefaultSettings()
	s.Params.HeartRate = math.NaN()
	g := NewGenerator(DefaultCanvas())
	var st State

	cycles := g.Cycles(s, &st)
	require.NotEmpty(t, cycles)
	for _, c := range cycles {
		assert.InDelta(t, 1.0, c.Duration, 1e-9)
	}
}

func TestCanvas_VoltageInvertsPoint(t *testing.T) {
	c := DefaultCanvas()
	p := c.Point(1.5, 0.8, 100)
	assert.Equal(t, 225.0, p.X)
	assert.InDelta(t, 120.0, p.Y, 1e-12)
	assert.InDelta(t, 0.8, c.Voltage(p, 100), 1e-12)
	assert.Equal(t, 0.0, c.Voltage(p, 0))
}

func TestOverride_Apply(t *testing.T) {
	base := DefaultParams()
	np := 3
	got := Override{HeartRate: f64(150), NP: &np}.Apply(base)

	want := base
	want.HeartRate = 150
	want.NP = 3
	assert.Equal(t, want, got)
	assert.Equal(t, base, Override{}.Apply(base))

	other := base
	other.HeightT = -0.3
	assert.Equal(t, other, FullOverride(other).Apply(base))
}
