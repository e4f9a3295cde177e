/*
Package glfwctx creates debug contexts through GLFW.

GLFW contexts belong to a window, so the debug context lives in a hidden 1x1
window that shares objects with the current context. MakeCurrent binds it to
that window; render into framebuffer objects to inspect shared resources.
*/
package glfwctx

import (
	"log/slog"
	"runtime"

	"github.com/QuestScreen/gldebug/debugctx"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func hint(target glfw.Hint, value bool) {
	if value {
		glfw.WindowHint(target, glfw.True)
	} else {
		glfw.WindowHint(target, glfw.False)
	}
}

func debugHints(p debugctx.Params) {
	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, p.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, p.Minor)
	switch {
	case p.Major < 3 || (p.Major == 3 && p.Minor < 2):
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLAnyProfile)
	case p.CoreProfile:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		hint(glfw.OpenGLForwardCompatible, runtime.GOOS == "darwin")
	default:
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
	}
	hint(glfw.OpenGLDebugContext, true)
	hint(glfw.Visible, false)
}

// Platform implements debugctx.Platform with GLFW. GLFW must be initialized
// and the caller must be on the main thread.
type Platform struct{}

// Create creates a hidden window whose context shares with the context
// current on the calling thread.
func (Platform) Create(p debugctx.Params, l *slog.Logger) (
	debugctx.Resource, debugctx.Status) {
	share := glfw.GetCurrentContext()
	if !debugctx.Verify(l, share != nil, "current GLFW context") {
		return nil, debugctx.StatusFailed
	}
	defer glfw.DefaultWindowHints()

	status := debugctx.StatusCreated
	debugHints(p)
	window, err := glfw.CreateWindow(1, 1, "debug context", nil, share)
	if err != nil {
		l.Warn("unable to create GL debug context", "error", err)
		glfw.DefaultWindowHints()
		hint(glfw.Visible, false)
		window, err = glfw.CreateWindow(1, 1, "debug context", nil, share)
		status = debugctx.StatusLegacy
	}
	// creating a window does not change the current context in GLFW
	if !debugctx.Verify(l, err == nil && window != nil, "GLFW context created") {
		return nil, debugctx.StatusFailed
	}
	return &resource{window: window}, status
}

type resource struct {
	window *glfw.Window
}

func (r *resource) MakeCurrent() {
	if r.window != nil {
		r.window.MakeContextCurrent()
	}
}

func (r *resource) Release() {
	if r.window != nil {
		r.window.Destroy()
		r.window = nil
	}
}
