// Package console implementa la edición de parámetros por líneas de comando
// que usa `ecgctl console`.
package console

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
	ErrQuit           = errors.New("quit")
)

// Session guarda la configuración editada y los contadores del stream.
type Session struct {
	settings signal.Settings
	state    signal.State
	gen      *signal.Generator
	catalog  *preset.Catalog
	newID    func() string
}

func NewSession(c signal.Canvas, catalog *preset.Catalog) *Session {
	return &Session{
		settings: signal.DefaultSettings(),
		gen:      signal.NewGenerator(c),
		catalog:  catalog,
		newID:    uuid.NewString,
	}
}

func (s *Session) Settings() signal.Settings { return s.settings }

func (s *Session) State() signal.State { return s.state }

// Commands para autocompletar.
func Commands() []string {
	return []string{"beat", "custom", "gen", "help", "pattern", "preset", "presets", "quit", "repeat", "reset", "scale", "set", "show"}
}

// Exec ejecuta una línea y devuelve lo que hay que mostrar.
func (s *Session) Exec(line string) (string, error) {
	f := strings.Fields(line)
	if len(f) == 0 {
		return "", nil
	}
	cmd, args := f[0], f[1:]

	switch cmd {
	case "help":
		return "commands: " + strings.Join(Commands(), " "), nil
	case "quit", "exit":
		return "", ErrQuit
	case "show":
		return s.show(), nil
	case "set":
		return s.set(args)
	case "scale":
		v, err := oneFloat(args, "scale <px/mV>")
		if err != nil {
			return "", err
		}
		s.settings.VerticalScale = v
		return "", nil
	case "pattern":
		return s.pattern(args)
	case "beat":
		return s.beat(args)
	case "custom":
		on, err := onOff(args, "custom on|off")
		if err != nil {
			return "", err
		}
		s.settings.UseCustomBeats = on
		return "", nil
	case "repeat":
		v, err := oneInt(args, "repeat <cycles>")
		if err != nil {
			return "", err
		}
		s.settings.RepeatInterval = v
		return "", nil
	case "presets":
		if s.catalog == nil {
			return "", nil
		}
		return strings.Join(s.catalog.Names(), "\n"), nil
	case "preset":
		return s.preset(args)
	case "reset":
		s.state.Reset()
		return "", nil
	case "gen":
		return s.generate(), nil
	}
	return "", fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
}

func (s *Session) set(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("%w: set <param> <value>", ErrUsage)
	}
	key := strings.ToLower(args[0])
	if key == "n_p" {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return "", fmt.Errorf("n_p: %w", err)
		}
		s.settings.Params.NP = n
		return "", nil
	}
	field, ok := floatFields(&s.settings.Params)[key]
	if !ok {
		return "", fmt.Errorf("unknown parameter %q", args[0])
	}
	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	*field = v
	return "", nil
}

func (s *Session) pattern(args []string) (string, error) {
	usage := fmt.Errorf("%w: pattern r|p on|off [count interval]", ErrUsage)
	if len(args) != 2 && len(args) != 4 {
		return "", usage
	}
	var p *signal.Pattern
	switch strings.ToLower(args[0]) {
	case "r":
		p = &s.settings.RPattern
	case "p":
		p = &s.settings.PPattern
	default:
		return "", usage
	}
	on, err := onOff(args[1:2], "pattern r|p on|off")
	if err != nil {
		return "", err
	}
	next := *p
	next.Enabled = on
	if len(args) == 4 {
		if next.Count, err = strconv.Atoi(args[2]); err != nil {
			return "", usage
		}
		if next.Interval, err = strconv.Atoi(args[3]); err != nil {
			return "", usage
		}
	}
	*p = next
	return "", nil
}

func (s *Session) beat(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("%w: beat add|rm <id>|list|clear", ErrUsage)
	}
	switch args[0] {
	case "add":
		b := signal.CustomBeat{ID: s.newID(), Params: signal.FullOverride(s.settings.Params)}
		s.settings.CustomBeats = append(s.settings.CustomBeats, b)
		return b.ID, nil
	case "rm":
		if len(args) != 2 {
			return "", fmt.Errorf("%w: beat rm <id>", ErrUsage)
		}
		kept := s.settings.CustomBeats[:0:0]
		for _, b := range s.settings.CustomBeats {
			if b.ID != args[1] {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(s.settings.CustomBeats) {
			return "", fmt.Errorf("no custom beat %q", args[1])
		}
		s.settings.CustomBeats = kept
		return "", nil
	case "clear":
		s.settings.CustomBeats = nil
		return "", nil
	case "list":
		ids := make([]string, len(s.settings.CustomBeats))
		for i, b := range s.settings.CustomBeats {
			ids[i] = b.ID
		}
		return strings.Join(ids, "\n"), nil
	}
	return "", fmt.Errorf("beat %q: %w", args[0], ErrUnknownCommand)
}

func (s *Session) preset(args []string) (string, error) {
	if s.catalog == nil || len(args) == 0 {
		return "", fmt.Errorf("%w: preset <name>", ErrUsage)
	}
	p, err := s.catalog.Lookup(strings.Join(args, " "))
	if err != nil {
		return "", err
	}
	s.settings = p.Apply(s.settings)
	s.state.Reset()
	return p.Name + ": " + p.Description, nil
}

func (s *Session) show() string {
	var b strings.Builder
	fields := floatFields(&s.settings.Params)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%-10s %g\n", k, *fields[k])
	}
	fmt.Fprintf(&b, "%-10s %d\n", "n_p", s.settings.Params.NP)
	fmt.Fprintf(&b, "scale      %g px/mV\n", s.settings.VerticalScale)
	fmt.Fprintf(&b, "r pattern  %s\n", fmtPattern(s.settings.RPattern))
	fmt.Fprintf(&b, "p pattern  %s\n", fmtPattern(s.settings.PPattern))
	fmt.Fprintf(&b, "custom     %t (%d beats, repeat %d)", s.settings.UseCustomBeats, len(s.settings.CustomBeats), s.settings.RepeatInterval)
	return b.String()
}

// generate produce una ventana y resume sus ciclos: N = normal, número =
// índice del latido custom, x = QRS omitido.
func (s *Session) generate() string {
	cycles := s.gen.Cycles(s.settings, &s.state)
	marks := make([]string, len(cycles))
	samples := 0
	for i, c := range cycles {
		samples += len(c.Samples)
		switch {
		case c.RCount == 0:
			marks[i] = "x"
		case c.Source == signal.NormalBeat:
			marks[i] = "N"
		default:
			marks[i] = strconv.Itoa(c.Source)
		}
	}
	return fmt.Sprintf("cycles=%d points=%d beats=[%s] state=%+v",
		len(cycles), samples, strings.Join(marks, " "), s.state)
}

func floatFields(p *signal.Params) map[string]*float64 {
	return map[string]*float64{
		"heart_rate": &p.HeartRate,
		"h_p":        &p.HeightP,
		"b_p":        &p.BP,
		"h_q":        &p.HeightQ,
		"b_q":        &p.BQ,
		"h_r":        &p.HeightR,
		"b_r":        &p.BR,
		"h_s":        &p.HeightS,
		"b_s":        &p.BS,
		"h_t":        &p.HeightT,
		"b_t":        &p.BT,
		"l_pq":       &p.LPQ,
		"l_st":       &p.LST,
		"l_tp":       &p.LTP,
	}
}

func fmtPattern(p signal.Pattern) string {
	return fmt.Sprintf("enabled=%t count=%d interval=%d", p.Enabled, p.Count, p.Interval)
}

func onOff(args []string, usage string) (bool, error) {
	if len(args) == 1 {
		switch strings.ToLower(args[0]) {
		case "on", "true", "1":
			return true, nil
		case "off", "false", "0":
			return false, nil
		}
	}
	return false, fmt.Errorf("%w: %s", ErrUsage, usage)
}

func oneFloat(args []string, usage string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return v, nil
}

func oneInt(args []string, usage string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	v, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return v, nil
}
