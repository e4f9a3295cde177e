/*
Package config implements loading and writing the viewer's config.yaml.
*/
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/QuestScreen/gldebug/env"
	"gopkg.in/yaml.v3"
)

// Backend selects how the debug context is created.
type Backend int

const (
	// Native uses the platform's GL binding (GLX on linux). Platforms without
	// a native implementation get an inert context.
	Native Backend = iota
	// SDL creates the debug context through SDL2.
	SDL
	// GLFW creates the debug context through GLFW.
	GLFW
)

var backendNames = [...]string{"native", "sdl", "glfw"}

func (b Backend) String() string {
	if b < 0 || int(b) >= len(backendNames) {
		return "unknown"
	}
	return backendNames[b]
}

// ParseBackend parses a backend name, ignoring case.
func ParseBackend(name string) (Backend, error) {
	lower := env.Lower(name)
	for i := range backendNames {
		if backendNames[i] == lower {
			return Backend(i), nil
		}
	}
	return Native, fmt.Errorf("unknown backend: %s", name)
}

// ContextConfig describes the requested debug context.
type ContextConfig struct {
	Major           int  `yaml:"major"`
	Minor           int  `yaml:"minor"`
	CoreProfile     bool `yaml:"coreProfile"`
	DirectRendering bool `yaml:"directRendering"`
}

// KeyAction describes a key that closes the viewer with the given return
// value. Key is an SDL key name.
type KeyAction struct {
	Key         string `yaml:"key"`
	ReturnValue int    `yaml:"returnValue"`
	Description string `yaml:"description"`
}

// Config is the content of config.yaml.
type Config struct {
	Fullscreen    bool
	Width, Height int32
	Backend       Backend
	Context       ContextConfig
	LogLevel      slog.Level
	KeyActions    []KeyAction
}

type tmpConfig struct {
	Fullscreen bool          `yaml:"fullscreen"`
	Width      int32         `yaml:"width"`
	Height     int32         `yaml:"height"`
	Backend    string        `yaml:"backend"`
	Context    ContextConfig `yaml:"context"`
	LogLevel   string        `yaml:"logLevel"`
	KeyActions []KeyAction   `yaml:"keyActions"`
}

var defaultKeyActions = []KeyAction{{Key: "Escape", ReturnValue: 0,
	Description: "Exit"}}

// Default returns the configuration written when no config file exists.
func Default() Config {
	return Config{
		Width: 800, Height: 600, Backend: Native,
		Context:    ContextConfig{Major: 4, Minor: 3, DirectRendering: true},
		LogLevel:   slog.LevelInfo,
		KeyActions: append([]KeyAction(nil), defaultKeyActions...),
	}
}

// MarshalYAML writes the config with backend and log level as names.
func (c *Config) MarshalYAML() (interface{}, error) {
	return tmpConfig{
		Fullscreen: c.Fullscreen, Width: c.Width, Height: c.Height,
		Backend: c.Backend.String(), Context: c.Context,
		LogLevel: env.Lower(c.LogLevel.String()), KeyActions: c.KeyActions,
	}, nil
}

var (
	knownFields = map[string]bool{"fullscreen": true, "width": true,
		"height": true, "backend": true, "context": true, "logLevel": true,
		"keyActions": true}
	knownContextFields = map[string]bool{"major": true, "minor": true,
		"coreProfile": true, "directRendering": true}
	knownKeyActionFields = map[string]bool{"key": true, "returnValue": true,
		"description": true}
)

// checkMapping rejects keys of a mapping node that are not in known.
func checkMapping(value *yaml.Node, known map[string]bool) error {
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(value.Content); i += 2 {
		key := value.Content[i]
		if !known[key.Value] {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

// checkFields rejects unknown keys at the top level, in context and in each
// key action. The decoder's KnownFields does not reach into custom
// unmarshalers.
func checkFields(value *yaml.Node) error {
	if err := checkMapping(value, knownFields); err != nil {
		return err
	}
	if value.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		child := value.Content[i+1]
		switch value.Content[i].Value {
		case "context":
			if err := checkMapping(child, knownContextFields); err != nil {
				return err
			}
		case "keyActions":
			if child.Kind != yaml.SequenceNode {
				continue
			}
			for _, item := range child.Content {
				if err := checkMapping(item, knownKeyActionFields); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// UnmarshalYAML reads and validates a config. Missing key actions default to
// Escape closing the viewer.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if err := checkFields(value); err != nil {
		return err
	}
	tmp := tmpConfig{Backend: "native", LogLevel: "info"}
	if err := value.Decode(&tmp); err != nil {
		return err
	}
	if tmp.Width <= 0 || tmp.Height <= 0 {
		return fmt.Errorf("invalid size (w=%d, h=%d)", tmp.Width, tmp.Height)
	}
	if tmp.Context.Major < 1 || tmp.Context.Minor < 0 {
		return fmt.Errorf("invalid GL version %d.%d",
			tmp.Context.Major, tmp.Context.Minor)
	}
	backend, err := ParseBackend(tmp.Backend)
	if err != nil {
		return err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(tmp.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	for i := range tmp.KeyActions {
		if tmp.KeyActions[i].Key == "" {
			return fmt.Errorf("key action %d has no key", i)
		}
	}

	*c = Config{Fullscreen: tmp.Fullscreen, Width: tmp.Width, Height: tmp.Height,
		Backend: backend, Context: tmp.Context, LogLevel: level,
		KeyActions: tmp.KeyActions}
	if len(c.KeyActions) == 0 {
		c.KeyActions = append([]KeyAction(nil), defaultKeyActions...)
	}
	return nil
}

// Load reads the config at path. If the file does not exist, the default
// config is written there and returned.
func Load(path string) (Config, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
		ret := Default()
		output, err := yaml.Marshal(&ret)
		if err != nil {
			return Config{}, err
		}
		if err = os.WriteFile(path, output, 0644); err != nil {
			log.Println("unable to write config file: " + err.Error())
		} else {
			log.Println("Wrote default config file " + path)
		}
		return ret, nil
	}
	var ret Config
	decoder := yaml.NewDecoder(bytes.NewReader(input))
	decoder.KnownFields(true)
	if err := decoder.Decode(&ret); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}
