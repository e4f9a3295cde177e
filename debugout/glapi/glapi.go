/*
Package glapi installs the GL debug output callback of the current context and
provides the few GL calls the viewer needs.
*/
package glapi

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/QuestScreen/gldebug/debugout"
	"github.com/go-gl/gl/v4.3-core/gl"
)

// ErrNoDebugContext is returned by Install if the current context was not
// created with the debug flag.
var ErrNoDebugContext = errors.New("current GL context is not a debug context")

// Init loads GL function pointers. A context must be current.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("unable to load GL functions: %w", err)
	}
	return nil
}

// Install registers a debug message callback on the current context that
// writes to l. Messages are delivered synchronously on the thread issuing the
// GL call. Init must have been called.
//
// The callback stays registered until the context is destroyed.
func Install(l *slog.Logger) error {
	var flags int32
	gl.GetIntegerv(gl.CONTEXT_FLAGS, &flags)
	if flags&gl.CONTEXT_FLAG_DEBUG_BIT == 0 {
		return ErrNoDebugContext
	}
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32,
		length int32, message string, userParam unsafe.Pointer) {
		debugout.Message{Source: source, Type: gltype, ID: id, Severity: severity,
			Text: message}.Log(l)
	}, nil)
	gl.DebugMessageInsert(gl.DEBUG_SOURCE_APPLICATION, gl.DEBUG_TYPE_MARKER, 0,
		gl.DEBUG_SEVERITY_NOTIFICATION, -1, gl.Str("debug output installed\x00"))
	return nil
}

// Version returns the version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Viewport sets the viewport of the current context.
func Viewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

// Clear clears the color buffer of the current drawable with the given color.
func Clear(r, g, b float32) {
	gl.ClearColor(r, g, b, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
