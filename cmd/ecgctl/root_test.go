package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivanzxc/go-ecg-stream/internal/console"
	"github.com/ivanzxc/go-ecg-stream/internal/preset"
	"github.com/ivanzxc/go-ecg-stream/internal/signal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := newRootCommand()
	assert.Equal(t, "ecgctl", cmd.Use)

	for _, name := range []string{"presets", "render", "export", "rate", "console", "listen"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := newRootCommand()

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)

	p := cmd.PersistentFlags().Lookup("preset")
	require.NotNil(t, p)
	assert.Equal(t, "", p.DefValue)
}

func TestPresetsCommand(t *testing.T) {
	out, err := run(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "Normal Sinus Rhythm")
	assert.Contains(t, out, "Atrial Flutter")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)
}

func TestPresetsCommandBadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("presets:\n  - name: x\n    colour: red\n"), 0o644))

	_, err := run(t, "presets", "--presets", path)
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestUnknownPreset(t *testing.T) {
	_, err := run(t, "rate", "--preset", "no such rhythm")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
	assert.True(t, errors.Is(err, preset.ErrUnknownPreset))
}

func TestBadFlagIsCommandError(t *testing.T) {
	_, err := run(t, "render", "--width", "wide")
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestRenderWritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.svg")
	_, err := run(t, "render", "--width", "200", "--height", "100", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100"`))
	assert.Contains(t, string(data), `d="M 0 50 L`)
}

func TestRenderSweepIsContinuous(t *testing.T) {
	out, err := run(t, "render", "--width", "200", "--height", "100", "--pointer", "100")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "M "))
}

func TestRenderEraseDefault(t *testing.T) {
	cmd := newRootCommand()
	sub, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)
	assert.Equal(t, "6", sub.Flags().Lookup("erase").DefValue)
}

func TestExportWritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ecg.wav")
	_, err := run(t, "export", "--fs", "100", "--seconds", "2", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 44)
	assert.Equal(t, "RIFF", string(data[:4]))
	assert.Equal(t, "WAVE", string(data[8:12]))
}

func TestExportRejectsBadRate(t *testing.T) {
	_, err := run(t, "export", "--fs", "0", "-o", filepath.Join(t.TempDir(), "x.wav"))
	require.Error(t, err)
	assert.Equal(t, exitCommandError, exitCode(err))
}

func TestRateCommand(t *testing.T) {
	out, err := run(t, "rate", "--preset", "sinus tachycardia")
	require.NoError(t, err)
	assert.Contains(t, out, "configured=135 ")
	assert.NotContains(t, out, "beats=0")
}

type scripted struct {
	lines []string
}

func (s *scripted) Readline() (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	l := s.lines[0]
	s.lines = s.lines[1:]
	return l, nil
}

func TestRunConsole(t *testing.T) {
	c, err := preset.Builtin()
	require.NoError(t, err)
	sess := console.NewSession(signal.DefaultCanvas(), c)

	var out bytes.Buffer
	rl := &scripted{lines: []string{"set heart_rate 90", "bogus", "gen", "quit", "gen"}}
	require.NoError(t, runConsole(rl, sess, &out))

	assert.Contains(t, out.String(), "error:")
	assert.Contains(t, out.String(), "cycles=")
	assert.Equal(t, 1, strings.Count(out.String(), "cycles="))
	assert.Equal(t, 90.0, sess.Settings().Params.HeartRate)
	assert.Len(t, rl.lines, 1)
}

func TestRunConsoleEOF(t *testing.T) {
	sess := console.NewSession(signal.DefaultCanvas(), nil)
	require.NoError(t, runConsole(&scripted{}, sess, io.Discard))
}
