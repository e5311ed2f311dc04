package signal

// NormalBeat marca un ciclo que usa los parámetros base.
const NormalBeat = -1

// beat es la configuración efectiva de un ciclo.
type beat struct {
	params Params
	source int // índice en CustomBeats o NormalBeat
	pCount int
	rCount int
}

// schedule elige la configuración del próximo ciclo y avanza st.
//
// Latidos custom: se recorre la lista completa y luego RepeatInterval ciclos
// normales antes de volver a empezar. Los patrones P y R sustituyen el número
// de ondas cada Interval ciclos; Interval <= 0 nunca dispara.
func schedule(s *Settings, st *State) beat {
	b := beat{params: s.Params, source: NormalBeat}

	n := len(s.CustomBeats)
	if s.UseCustomBeats && n > 0 && st.NormalRemaining == 0 {
		if st.CustomIndex >= n || st.CustomIndex < 0 {
			// la lista se achicó entre llamadas
			st.CustomIndex = 0
		}
		b.params = s.CustomBeats[st.CustomIndex].Params.Apply(s.Params)
		b.source = st.CustomIndex
		st.CustomIndex++
		if st.CustomIndex >= n {
			st.CustomIndex = 0
			st.NormalRemaining = s.RepeatInterval
		}
	} else if st.NormalRemaining > 0 {
		st.NormalRemaining--
	}

	b.pCount = b.params.NP
	if s.PPattern.Enabled {
		st.PCounter++
		if s.PPattern.Interval > 0 && st.PCounter >= s.PPattern.Interval {
			b.pCount = s.PPattern.Count
			st.PCounter = 0
		}
	}

	b.rCount = 1
	if s.RPattern.Enabled {
		st.RCounter++
		if s.RPattern.Interval > 0 && st.RCounter >= s.RPattern.Interval {
			b.rCount = s.RPattern.Count
			st.RCounter = 0
		}
	}

	st.Cycles++
	return b
}
