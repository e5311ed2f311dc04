package stream

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrShortFrame: el payload no es múltiplo de 4 bytes.
var ErrShortFrame = errors.New("frame length is not a multiple of 4")

// EncodeFrame serializa muestras en mV como float32 little-endian.
func EncodeFrame(samples []float32) []byte {
	out := make([]byte, 4*len(samples))
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// DecodeFrame es la inversa de EncodeFrame.
func DecodeFrame(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("decode frame of %d bytes: %w", len(b), ErrShortFrame)
	}
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, nil
}

// ParamMsg lo publica el processor cada vez que detecta un latido.
type ParamMsg struct {
	Subject string `json:"subject"`
	Session string `json:"session,omitempty"`
	Ts      int64  `json:"ts"`
	HR      int    `json:"hr"`
}

func (m ParamMsg) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

func UnmarshalParams(b []byte) (ParamMsg, error) {
	var m ParamMsg
	if err := json.Unmarshal(b, &m); err != nil {
		return ParamMsg{}, fmt.Errorf("decode params: %w", err)
	}
	return m, nil
}
