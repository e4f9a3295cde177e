/*
Package sdlctx creates debug contexts through SDL2. It works wherever SDL can
share GL contexts, which includes the platforms without a native
implementation in this module.
*/
package sdlctx

import (
	"log/slog"

	"github.com/QuestScreen/gldebug/debugctx"
	"github.com/veandco/go-sdl2/sdl"
)

type attribute struct {
	attr  sdl.GLattr
	value int
}

func debugAttributes(p debugctx.Params) []attribute {
	profile := int(sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	if p.CoreProfile {
		profile = int(sdl.GL_CONTEXT_PROFILE_CORE)
	}
	return []attribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, p.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, p.Minor},
		{sdl.GL_CONTEXT_PROFILE_MASK, profile},
		{sdl.GL_CONTEXT_FLAGS, int(sdl.GL_CONTEXT_DEBUG_FLAG)},
		{sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1},
	}
}

// legacyAttributes are SDL's defaults for a desktop context: no version,
// profile or flags requested, sharing with the current context.
func legacyAttributes() []attribute {
	return []attribute{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 2},
		{sdl.GL_CONTEXT_MINOR_VERSION, 1},
		{sdl.GL_CONTEXT_PROFILE_MASK, 0},
		{sdl.GL_CONTEXT_FLAGS, 0},
		{sdl.GL_SHARE_WITH_CURRENT_CONTEXT, 1},
	}
}

// saveAttributes returns the current values of the attributes in attrs so that
// they can be restored after context creation.
func saveAttributes(attrs []attribute) []attribute {
	saved := make([]attribute, 0, len(attrs))
	for _, a := range attrs {
		value, err := sdl.GLGetAttribute(a.attr)
		if err != nil {
			continue
		}
		saved = append(saved, attribute{a.attr, value})
	}
	return saved
}

func applyAttributes(attrs []attribute) {
	for _, a := range attrs {
		sdl.GLSetAttribute(a.attr, a.value)
	}
}

// Platform implements debugctx.Platform with SDL. SDL has no notion of
// indirect rendering, so Params.DirectRendering is ignored.
type Platform struct{}

// Create creates a context sharing with the one current on the calling
// thread. SDL's GL context and window must be current.
func (Platform) Create(p debugctx.Params, l *slog.Logger) (
	debugctx.Resource, debugctx.Status) {
	window, err := sdl.GLGetCurrentWindow()
	if !debugctx.Verify(l, err == nil && window != nil, "current SDL GL window") {
		return nil, debugctx.StatusFailed
	}
	share, err := sdl.GLGetCurrentContext()
	if !debugctx.Verify(l, err == nil && share != nil, "current SDL GL context") {
		return nil, debugctx.StatusFailed
	}

	attrs := debugAttributes(p)
	saved := saveAttributes(attrs)
	defer applyAttributes(saved)

	status := debugctx.StatusCreated
	applyAttributes(attrs)
	ctx, err := window.GLCreateContext()
	if err != nil {
		l.Warn("unable to create GL debug context", "error", err)
		applyAttributes(legacyAttributes())
		ctx, err = window.GLCreateContext()
		status = debugctx.StatusLegacy
	}
	// SDL makes a newly created context current.
	if err := window.GLMakeCurrent(share); err != nil {
		l.Warn("unable to restore GL context", "error", err)
	}
	if !debugctx.Verify(l, err == nil && ctx != nil, "SDL GL context created") {
		return nil, debugctx.StatusFailed
	}
	return &resource{window: window, ctx: ctx, log: l}, status
}

type resource struct {
	window *sdl.Window
	ctx    sdl.GLContext
	log    *slog.Logger
}

func (r *resource) MakeCurrent() {
	if r.ctx == nil {
		return
	}
	window, err := sdl.GLGetCurrentWindow()
	if err != nil || window == nil {
		window = r.window
	}
	if err := window.GLMakeCurrent(r.ctx); err != nil {
		r.log.Warn("unable to make GL debug context current", "error", err)
	}
}

func (r *resource) Release() {
	if r.ctx != nil {
		sdl.GLDeleteContext(r.ctx)
		r.ctx = nil
	}
}
