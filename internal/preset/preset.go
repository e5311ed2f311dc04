// Package preset carga el catálogo de pacientes de demostración.
package preset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

//go:embed presets.yaml
var builtin []byte

var ErrUnknownPreset = errors.New("unknown preset")

// Preset es un paciente: parámetros base más patrones y latidos custom
// opcionales.
type Preset struct {
	Name           string              `yaml:"name"`
	Category       string              `yaml:"category"`
	Description    string              `yaml:"description"`
	Params         signal.Params       `yaml:"params"`
	RPattern       *signal.Pattern     `yaml:"r_wave_pattern,omitempty"`
	PPattern       *signal.Pattern     `yaml:"p_wave_pattern,omitempty"`
	CustomBeats    []signal.CustomBeat `yaml:"custom_beats,omitempty"`
	UseCustomBeats bool                `yaml:"use_custom_beats,omitempty"`
	RepeatInterval int                 `yaml:"repeat_interval,omitempty"`
}

type Catalog struct {
	Presets []Preset `yaml:"presets"`
}

// Builtin devuelve el catálogo embebido.
func Builtin() (*Catalog, error) {
	return Parse(builtin)
}

// Load lee un catálogo YAML de disco.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets: %w", err)
	}
	return Parse(data)
}

// Parse rechaza campos desconocidos y presets sin nombre o repetidos.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}

	seen := map[string]bool{}
	for i, p := range c.Presets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("preset %d: name is required", i)
		}
		k := key(p.Name)
		if seen[k] {
			return nil, fmt.Errorf("preset %q: duplicate name", p.Name)
		}
		seen[k] = true
	}
	return &c, nil
}

// Lookup ignora mayúsculas, espacios extra y guiones.
func (c *Catalog) Lookup(name string) (Preset, error) {
	k := key(name)
	for _, p := range c.Presets {
		if key(p.Name) == k {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%q: %w", name, ErrUnknownPreset)
}

// Names en el orden del catálogo.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.Presets))
	for i, p := range c.Presets {
		out[i] = p.Name
	}
	return out
}

// Apply carga el preset sobre s. Los campos ausentes vuelven a los valores
// por defecto del animador; la escala vertical se conserva.
func (p Preset) Apply(s signal.Settings) signal.Settings {
	def := signal.DefaultSettings()

	s.Params = p.Params
	s.RPattern = def.RPattern
	if p.RPattern != nil {
		s.RPattern = *p.RPattern
	}
	s.PPattern = def.PPattern
	if p.PPattern != nil {
		s.PPattern = *p.PPattern
	}

	if len(p.CustomBeats) > 0 {
		s.CustomBeats = append([]signal.CustomBeat(nil), p.CustomBeats...)
		s.UseCustomBeats = p.UseCustomBeats
		s.RepeatInterval = p.RepeatInterval
		if s.RepeatInterval == 0 {
			s.RepeatInterval = def.RepeatInterval
		}
	} else {
		s.CustomBeats = nil
		s.UseCustomBeats = false
	}
	return s
}

var folder = cases.Fold()

func key(name string) string {
	f := folder.String(strings.Join(strings.Fields(name), " "))
	return strings.NewReplacer("-", " ", "_", " ").Replace(f)
}
