package display

import (
	"fmt"
	"time"

	"github.com/QuestScreen/gldebug/config"
	"github.com/veandco/go-sdl2/sdl"
)

// keyAction is a config.KeyAction with its key resolved.
type keyAction struct {
	key         sdl.Keycode
	returnValue int
}

func resolveKeyActions(actions []config.KeyAction) ([]keyAction, error) {
	ret := make([]keyAction, len(actions))
	for i := range actions {
		key := sdl.GetKeyFromName(actions[i].Key)
		if key == sdl.K_UNKNOWN {
			return nil, fmt.Errorf("unknown key: %s", actions[i].Key)
		}
		ret[i] = keyAction{key: key, returnValue: actions[i].ReturnValue}
	}
	return ret, nil
}

// SDLWindow is a Window created with SDL. SDL must be initialized.
type SDLWindow struct {
	window  *sdl.Window
	context sdl.GLContext
	actions []keyAction
}

// NewSDLWindow creates a window and makes a new GL context current on it.
// cfg.Context must have passed through HostContext.
func NewSDLWindow(title string, cfg config.Config) (*SDLWindow, error) {
	actions, err := resolveKeyActions(cfg.KeyActions)
	if err != nil {
		return nil, err
	}
	setGLAttributes(cfg.Context)

	var flags uint32 = sdl.WINDOW_OPENGL | sdl.WINDOW_ALLOW_HIGHDPI
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, cfg.Width, cfg.Height, flags)
	if err != nil {
		return nil, err
	}
	context, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		return nil, err
	}
	sdl.GLSetSwapInterval(1)
	return &SDLWindow{window: window, context: context, actions: actions}, nil
}

// GLSwap implements Window.
func (w *SDLWindow) GLSwap() {
	w.window.GLSwap()
}

// Poll implements Window.
func (w *SDLWindow) Poll(wait time.Duration) (bool, int) {
	event := sdl.WaitEventTimeout(int(wait / time.Millisecond))
	for ; event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN {
				for i := range w.actions {
					if e.Keysym.Sym == w.actions[i].key {
						return true, w.actions[i].returnValue
					}
				}
			}
		case *sdl.QuitEvent:
			return true, 0
		}
	}
	return false, 0
}

// DrawableSize implements Window.
func (w *SDLWindow) DrawableSize() (int32, int32) {
	return w.window.GLGetDrawableSize()
}

// Destroy deletes the host context and the window.
func (w *SDLWindow) Destroy() {
	sdl.GLDeleteContext(w.context)
	w.window.Destroy()
}
