package stream

import (
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects por defecto del pipeline.
const (
	SubjectWave   = "ecg.wave"
	SubjectParams = "ecg.params"
)

func Connect(url, name string) (*nats.Conn, error) {
	if name == "" {
		name = "go-ecg-stream"
	}
	return nats.Connect(
		url,
		nats.Name(name),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}
