package signal

// Params describe la morfología de un latido: alturas en mV, anchos y
// segmentos en segundos, antes de escalar a la frecuencia cardíaca.
type Params struct {
	HeartRate float64 `yaml:"heart_rate" json:"heart_rate"`

	HeightP float64 `yaml:"h_p" json:"h_p"`
	BP      float64 `yaml:"b_p" json:"b_p"`
	HeightQ float64 `yaml:"h_q" json:"h_q"`
	BQ      float64 `yaml:"b_q" json:"b_q"`
	HeightR float64 `yaml:"h_r" json:"h_r"`
	BR      float64 `yaml:"b_r" json:"b_r"`
	HeightS float64 `yaml:"h_s" json:"h_s"`
	BS      float64 `yaml:"b_s" json:"b_s"`
	HeightT float64 `yaml:"h_t" json:"h_t"`
	BT      float64 `yaml:"b_t" json:"b_t"`

	LPQ float64 `yaml:"l_pq" json:"l_pq"`
	LST float64 `yaml:"l_st" json:"l_st"`
	LTP float64 `yaml:"l_tp" json:"l_tp"`

	NP int `yaml:"n_p" json:"n_p"`
}

// DefaultParams: ritmo sinusal normal a 70 BPM.
func DefaultParams() Params {
	return Params{
		HeartRate: 70,
		HeightP:   0.15,
		BP:        0.08,
		HeightQ:   -0.1,
		BQ:        0.025,
		HeightR:   1.2,
		BR:        0.05,
		HeightS:   -0.25,
		BS:        0.025,
		HeightT:   0.2,
		BT:        0.16,
		LPQ:       0.08,
		LST:       0.12,
		LTP:       0.3,
		NP:        1,
	}
}

// Pattern reemplaza el número de ondas (P o QRS) cada Interval ciclos.
type Pattern struct {
	Enabled  bool `yaml:"enabled" json:"enabled"`
	Count    int  `yaml:"count" json:"count"`
	Interval int  `yaml:"interval" json:"interval"`
}

// Override es una sobrescritura parcial de Params: solo los campos no nil
// reemplazan al valor base.
type Override struct {
	HeartRate *float64 `yaml:"heart_rate,omitempty" json:"heart_rate,omitempty"`

	HeightP *float64 `yaml:"h_p,omitempty" json:"h_p,omitempty"`
	BP      *float64 `yaml:"b_p,omitempty" json:"b_p,omitempty"`
	HeightQ *float64 `yaml:"h_q,omitempty" json:"h_q,omitempty"`
	BQ      *float64 `yaml:"b_q,omitempty" json:"b_q,omitempty"`
	HeightR *float64 `yaml:"h_r,omitempty" json:"h_r,omitempty"`
	BR      *float64 `yaml:"b_r,omitempty" json:"b_r,omitempty"`
	HeightS *float64 `yaml:"h_s,omitempty" json:"h_s,omitempty"`
	BS      *float64 `yaml:"b_s,omitempty" json:"b_s,omitempty"`
	HeightT *float64 `yaml:"h_t,omitempty" json:"h_t,omitempty"`
	BT      *float64 `yaml:"b_t,omitempty" json:"b_t,omitempty"`

	LPQ *float64 `yaml:"l_pq,omitempty" json:"l_pq,omitempty"`
	LST *float64 `yaml:"l_st,omitempty" json:"l_st,omitempty"`
	LTP *float64 `yaml:"l_tp,omitempty" json:"l_tp,omitempty"`

	NP *int `yaml:"n_p,omitempty" json:"n_p,omitempty"`
}

// FullOverride copia todos los campos de p.
func FullOverride(p Params) Override {
	return Override{
		HeartRate: &p.HeartRate,
		HeightP:   &p.HeightP,
		BP:        &p.BP,
		HeightQ:   &p.HeightQ,
		BQ:        &p.BQ,
		HeightR:   &p.HeightR,
		BR:        &p.BR,
		HeightS:   &p.HeightS,
		BS:        &p.BS,
		HeightT:   &p.HeightT,
		BT:        &p.BT,
		LPQ:       &p.LPQ,
		LST:       &p.LST,
		LTP:       &p.LTP,
		NP:        &p.NP,
	}
}

// Apply devuelve base con los campos presentes en o sobrescritos.
func (o Override) Apply(base Params) Params {
	out := base
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&out.HeartRate, o.HeartRate)
	set(&out.HeightP, o.HeightP)
	set(&out.BP, o.BP)
	set(&out.HeightQ, o.HeightQ)
	set(&out.BQ, o.BQ)
	set(&out.HeightR, o.HeightR)
	set(&out.BR, o.BR)
	set(&out.HeightS, o.HeightS)
	set(&out.BS, o.BS)
	set(&out.HeightT, o.HeightT)
	set(&out.BT, o.BT)
	set(&out.LPQ, o.LPQ)
	set(&out.LST, o.LST)
	set(&out.LTP, o.LTP)
	if o.NP != nil {
		out.NP = *o.NP
	}
	return out
}

// CustomBeat es un latido anormal insertado en la secuencia.
type CustomBeat struct {
	ID     string   `yaml:"id" json:"id"`
	Params Override `yaml:"params" json:"params"`
}

// Settings agrupa todo lo que el llamador controla entre llamadas a Generate.
type Settings struct {
	Params         Params
	VerticalScale  float64 // px/mV
	RPattern       Pattern
	PPattern       Pattern
	CustomBeats    []CustomBeat
	UseCustomBeats bool
	RepeatInterval int
}

// DefaultSettings reproduce el estado inicial del animador.
func DefaultSettings() Settings {
	return Settings{
		Params:    DefaultParams(),
		VerticalScale:100,
		RPattern:  Pattern{Enabled: false, Count: 2, Interval: 5},
		PPattern:  Pattern{Enabled: false, Count: 0, Interval: 3},
		RepeatInterval:10,
	}
}
