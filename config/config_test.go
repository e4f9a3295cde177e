package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 1024
height: 768
fullscreen: true
backend: GLFW
logLevel: debug
context:
  major: 3
  minor: 3
  coreProfile: true
keyActions:
  - key: Q
    returnValue: 2
    description: Quit
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Fullscreen: true, Width: 1024, Height: 768, Backend: GLFW,
		Context:  ContextConfig{Major: 3, Minor: 3, CoreProfile: true},
		LogLevel: slog.LevelDebug,
		KeyActions: []KeyAction{{Key: "Q", ReturnValue: 2,
			Description: "Quit"}},
	}, cfg)
}

func TestUnmarshalDefaultsKeyActions(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(
		"width: 10\nheight: 10\ncontext: {major: 2, minor: 1}\n"), &cfg))
	assert.Equal(t, defaultKeyActions, cfg.KeyActions)
	assert.Equal(t, Native, cfg.Backend)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestUnmarshalErrors(t *testing.T) {
	for _, input := range []string{
		"width: 0\nheight: 10\ncontext: {major: 4}\n",
		"width: 10\nheight: 10\ncontext: {major: 0}\n",
		"width: 10\nheight: 10\ncontext: {major: 4}\nbackend: metal\n",
		"width: 10\nheight: 10\ncontext: {major: 4}\nlogLevel: loud\n",
		"width: 10\nheight: 10\ncontext: {major: 4}\nkeyActions: [{returnValue: 1}]\n",
		"width: 10\nheight: 10\ncontext: {major: 4}\nport: 8080\n",
		"width: 10\nheight: 10\ncontext: {major: 4, minor: 6, coreprofile: true}\n",
		"width: 10\nheight: 10\ncontext: {major: 4}\nkeyActions: [{key: Q, retval: 1}]\n",
	} {
		var cfg Config
		assert.Error(t, yaml.Unmarshal([]byte(input), &cfg), input)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Backend = SDL
	cfg.LogLevel = slog.LevelWarn
	out, err := yaml.Marshal(&cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "backend: sdl\n")
	assert.Contains(t, string(out), "logLevel: warn\n")

	var back Config
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, cfg, back)
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("SDL")
	require.NoError(t, err)
	assert.Equal(t, SDL, b)
	_, err = ParseBackend("vulkan")
	assert.Error(t, err)
	assert.Equal(t, "unknown", Backend(7).String())
}

func TestLoadRejectsNestedTypos(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"width: 10\nheight: 10\ncontext: {major: 4, minor: 6, coreprofile: true}\n"),
		0644))
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "coreprofile"`)
}
