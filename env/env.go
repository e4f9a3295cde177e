/*
Package env reads process configuration from environment variables.
*/
package env

import (
	"os"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Bool returns the boolean value of the environment variable name.
// An unset or empty variable yields def. Otherwise the value is true iff it is
// one of "true", "yes", "on" or "1" (ignoring case); anything else is false.
func Bool(name string, def bool) bool {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return def
	}
	return parseBool(value)
}

func parseBool(value string) bool {
	switch cases.Fold().String(value) {
	case "true", "yes", "on", "1":
		return true
	}
	return false
}

// Flag is a boolean environment setting that is read on first use and cached
// for the lifetime of the process. It is safe for concurrent use.
type Flag struct {
	name  string
	def   bool
	once  sync.Once
	value bool
}

// NewFlag creates a flag backed by the environment variable name.
func NewFlag(name string, def bool) *Flag {
	return &Flag{name: name, def: def}
}

// Name returns the name of the backing environment variable.
func (f *Flag) Name() string {
	return f.name
}

// Get returns the cached value, reading the environment on the first call.
func (f *Flag) Get() bool {
	f.once.Do(func() {
		f.value = Bool(f.name, f.def)
	})
	return f.value
}

// Lower returns value case-folded for display purposes.
func Lower(value string) string {
	return cases.Lower(language.Und).String(value)
}
