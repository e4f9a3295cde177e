package display

import (
	"time"

	"github.com/QuestScreen/gldebug/config"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWWindow is a Window created with GLFW. GLFW must be initialized. Key
// actions are not supported; Escape and closing the window end the loop.
type GLFWWindow struct {
	window *glfw.Window
}

func boolHint(value bool) int {
	if value {
		return glfw.True
	}
	return glfw.False
}

// NewGLFWWindow creates a window and makes its GL context current.
// cfg.Context must have passed through HostContext.
func NewGLFWWindow(title string, cfg config.Config) (*GLFWWindow, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Context.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Context.Minor)
	if cfg.Context.Major > 3 || (cfg.Context.Major == 3 && cfg.Context.Minor >= 2) {
		if cfg.Context.CoreProfile {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			glfw.WindowHint(glfw.OpenGLForwardCompatible, boolHint(coreOnly))
		} else {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCompatProfile)
		}
	}
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	var monitor *glfw.Monitor
	width, height := int(cfg.Width), int(cfg.Height)
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		if mode := monitor.GetVideoMode(); mode != nil {
			width, height = mode.Width, mode.Height
		}
	}
	window, err := glfw.CreateWindow(width, height, title, monitor, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	return &GLFWWindow{window: window}, nil
}

// GLSwap implements Window.
func (w *GLFWWindow) GLSwap() {
	w.window.SwapBuffers()
}

// Poll implements Window.
func (w *GLFWWindow) Poll(wait time.Duration) (bool, int) {
	glfw.WaitEventsTimeout(wait.Seconds())
	if w.window.ShouldClose() || w.window.GetKey(glfw.KeyEscape) == glfw.Press {
		return true, 0
	}
	return false, 0
}

// DrawableSize implements Window.
func (w *GLFWWindow) DrawableSize() (int32, int32) {
	width, height := w.window.GetFramebufferSize()
	return int32(width), int32(height)
}

// Destroy implements Window.
func (w *GLFWWindow) Destroy() {
	w.window.Destroy()
}

// MakeCurrent makes the window's context current again.
func (w *GLFWWindow) MakeCurrent() {
	w.window.MakeContextCurrent()
}
