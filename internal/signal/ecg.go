package signal

// ECGSim entrega el ECG muestra a muestra a fs Hz, concatenando ventanas de
// Generator. No es seguro para uso concurrente.
type ECGSim struct {
	gen      *Generator
	settings Settings
	state    State
	buf      []float64
}

// NewECGSim fs=250 típico; cada recarga cubre la misma ventana que la
// pantalla por defecto (~6.7 s).
func NewECGSim(fs float64, s Settings) *ECGSim {
	if fs <= 0 {
		fs = DefaultCanvas().Speed
	}
	window := DefaultCanvas().Window()
	return &ECGSim{
		gen:      NewGenerator(Canvas{Width: window * fs, Height: DefaultCanvas().Height, Speed: fs}),
		settings: s,
	}
}

// Next devuelve la próxima muestra en mV.
func (s *ECGSim) Next() float32 {
	if len(s.buf) == 0 {
		s.fill()
		if len(s.buf) == 0 {
			return 0
		}
	}
	v := s.buf[0]
	s.buf = s.buf[1:]
	return float32(v)
}

func (s *ECGSim) fill() {
	for _, c := range s.gen.Cycles(s.settings, &s.state) {
		for _, smp := range c.Samples {
			s.buf = append(s.buf, smp.MV)
		}
	}
}

// SetSettings aplica desde la próxima ventana; lo ya generado se entrega.
func (s *ECGSim) SetSettings(st Settings) {
	s.settings = st
}

func (s *ECGSim) Settings() Settings { return s.settings }

func (s *ECGSim) State() State { return s.state }

// Reset descarta lo pendiente y pone los contadores en cero.
func (s *ECGSim) Reset() {
	s.state.Reset()
	s.buf = s.buf[:0]
}

// Rate es la frecuencia de muestreo en Hz.
func (s *ECGSim) Rate() float64 { return s.gen.Canvas().Speed }
