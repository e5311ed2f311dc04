package signal

// State son los contadores que persisten entre llamadas a Generate para que
// patrones y latidos custom continúen donde quedaron.
//
// Un State pertenece a un único stream; no es seguro compartirlo entre
// goroutines sin sincronización externa.
type State struct {
	Cycles          int `json:"cycles"`
	CustomIndex     int `json:"custom_index"`
	NormalRemaining int `json:"normal_remaining"`
	RCounter        int `json:"r_counter"`
	PCounter        int `json:"p_counter"`
}

// Reset pone los cinco contadores en cero.
func (s *State) Reset() {
	*s = State{}
}
