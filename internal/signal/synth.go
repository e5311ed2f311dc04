package signal

import "math"

// Wave identifica qué onda produjo una muestra.
type Wave uint8

const (
	WaveNone Wave = iota
	WaveP
	WaveQ
	WaveR
	WaveS
	WaveT
)

func (w Wave) String() string {
	switch w {
	case WaveP:
		return "P"
	case WaveQ:
		return "Q"
	case WaveR:
		return "R"
	case WaveS:
		return "S"
	case WaveT:
		return "T"
	default:
		return "-"
	}
}

// Sample es una muestra en tiempo absoluto (s) y amplitud (mV).
type Sample struct {
	T    float64
	MV   float64
	Wave Wave
}

// Cycle es un latido sintetizado.
type Cycle struct {
	Start    float64
	Duration float64
	Source   int // índice del latido custom o NormalBeat
	PCount   int
	RCount   int
	Samples  []Sample
}

// layout guarda los inicios de cada pulso y los anchos ya escalados.
type layout struct {
	p    []float64
	q    []float64
	r    []float64
	s    []float64
	t    []float64
	bp   float64
	bq   float64
	br   float64
	bs   float64
	bt   float64
	h    Params
	qrs  bool
	span float64
}

// newLayout escala los anchos para que el ciclo dure 60/HeartRate y ubica
// los pulsos desde start.
//
// El ancho del QRS entra una sola vez en la duración aunque rCount > 1; las
// repeticiones extra pueden extenderse más allá del ciclo declarado.
func newLayout(b beat, start float64) layout {
	p := b.params
	qrs := 0.0
	if b.rCount > 0 {
		qrs = 1
	}
	base := float64(b.pCount)*(p.BP+p.LPQ) +
		(p.BQ+p.BR+p.BS)*qrs +
		p.LST + p.BT + p.LTP

	hr := p.HeartRate
	if !(hr > 0) { // incluye NaN
		hr = 60
	}
	sf := (60 / hr) / base

	l := layout{
		bp:  p.BP * sf,
		bq:  p.BQ * sf,
		br:  p.BR * sf,
		bs:  p.BS * sf,
		bt:  p.BT * sf,
		h:   p,
		qrs: b.rCount > 0,
	}
	lpq, lst, ltp := p.LPQ*sf, p.LST*sf, p.LTP*sf

	l.span = float64(b.pCount)*(l.bp+lpq) + lst + l.bt + ltp
	if l.qrs {
		l.span += l.bq + l.br + l.bs
	}

	off := start
	for i := 0; i < b.pCount; i++ {
		l.p = append(l.p, off+float64(i)*(l.bp+lpq))
	}
	off += float64(b.pCount) * (l.bp + lpq)

	if l.qrs {
		var q float64
		for i := 0; i < b.rCount; i++ {
			q = off
			off += l.bq
			l.r = append(l.r, off)
			off += l.br
			l.s = append(l.s, off)
			off += l.bs
			if i < b.rCount-1 {
				off += lpq / 2
			}
		}
		// solo el último Q queda ubicado
		l.q = []float64{q}
	}
	off += lst
	l.t = []float64{off}
	return l
}

// at evalúa las ondas en orden P, Q, R, S, T; gana la primera distinta de 0.
func (l *layout) at(t float64) (float64, Wave) {
	if v := first(t, l.p, l.h.HeightP, l.bp); v != 0 {
		return v, WaveP
	}
	if l.qrs {
		if v := first(t, l.q, l.h.HeightQ, l.bq); v != 0 {
			return v, WaveQ
		}
		if v := first(t, l.r, l.h.HeightR, l.br); v != 0 {
			return v, WaveR
		}
		if v := first(t, l.s, l.h.HeightS, l.bs); v != 0 {
			return v, WaveS
		}
	}
	if v := first(t, l.t, l.h.HeightT, l.bt); v != 0 {
		return v, WaveT
	}
	return 0, WaveNone
}

func first(t float64, starts []float64, h, b float64) float64 {
	for _, s := range starts {
		if t >= s && t < s+b {
			return Pulse(t, h, b, s)
		}
	}
	return 0
}

// synthesize muestrea un ciclo cada dt segundos en [start, start+duración).
// Una duración no positiva o no finita devuelve un ciclo vacío.
func synthesize(b beat, start, dt float64) Cycle {
	l := newLayout(b, start)
	c := Cycle{
		Start:    start,
		Duration: l.span,
		Source:   b.source,
		PCount:   b.pCount,
		RCount:   b.rCount,
	}
	if !(l.span > 0) || math.IsInf(l.span, 0) {
		return c
	}

	end := start + l.span
	c.Samples = make([]Sample, 0, int(l.span/dt)+1)
	for t := start; t < end; t += dt {
		v, w := l.at(t)
		c.Samples = append(c.Samples, Sample{T: t, MV: v, Wave: w})
	}
	return c
}
