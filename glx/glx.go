/*
Package glx creates debug contexts through GLX.

The algorithm is written against API so that it can run against libGL (see
package xlib) or against a fake.
*/
package glx

import (
	"log/slog"

	"github.com/QuestScreen/gldebug/debugctx"
)

// Opaque native handles. Zero is the null handle.
type (
	Display  uintptr
	Context  uintptr
	Drawable uintptr
	FBConfig uintptr
)

// GLX tokens used when building attribute lists.
const (
	None = 0

	Screen     = 0x800C
	FBConfigID = 0x8013

	ContextMajorVersionARB = 0x2091
	ContextMinorVersionARB = 0x2092
	ContextFlagsARB        = 0x2094
	ContextProfileMaskARB  = 0x9126

	ContextDebugBitARB                = 0x0001
	ContextCoreProfileBitARB          = 0x0001
	ContextCompatibilityProfileBitARB = 0x0002
)

// CreateContextAttribsFunc is glXCreateContextAttribsARB. attribs is
// terminated with None.
type CreateContextAttribsFunc func(dpy Display, config FBConfig,
	share Context, direct bool, attribs []int) Context

// API is the subset of GLX used to create debug contexts.
type API interface {
	CurrentDisplay() Display
	CurrentContext() Context
	CurrentDrawable() Drawable
	// QueryContext returns the value of attribute for ctx.
	QueryContext(dpy Display, ctx Context, attribute int) int
	// ChooseFBConfig returns the configs of screen matching attribs.
	ChooseFBConfig(dpy Display, screen int, attribs []int) []FBConfig
	// CreateContextAttribs resolves glXCreateContextAttribsARB at run time.
	// It returns nil if the entry point is not available.
	CreateContextAttribs() CreateContextAttribsFunc
	// CreateLegacyContext creates a context with glXCreateContext using the
	// visual of config.
	CreateLegacyContext(dpy Display, config FBConfig, share Context,
		direct bool) Context
	DestroyContext(dpy Display, ctx Context)
	MakeCurrent(dpy Display, draw Drawable, ctx Context) bool
}

// Platform implements debugctx.Platform on top of an API.
type Platform struct {
	api API
}

// NewPlatform returns a platform using api.
func NewPlatform(api API) *Platform {
	return &Platform{api: api}
}

// ContextAttribs returns the attribute list passed to
// glXCreateContextAttribsARB for p.
func ContextAttribs(p debugctx.Params) []int {
	profile := ContextCompatibilityProfileBitARB
	if p.CoreProfile {
		profile = ContextCoreProfileBitARB
	}
	return []int{
		ContextMajorVersionARB, p.Major,
		ContextMinorVersionARB, p.Minor,
		ContextProfileMaskARB, profile,
		ContextFlagsARB, ContextDebugBitARB,
		None,
	}
}

// Create creates a context sharing with the one current on the calling
// thread. A context must be current.
func (g *Platform) Create(p debugctx.Params, l *slog.Logger) (
	debugctx.Resource, debugctx.Status) {
	dpy := g.api.CurrentDisplay()
	share := g.api.CurrentContext()
	if !debugctx.Verify(l, dpy != 0 && share != 0, "current GL context") {
		return nil, debugctx.StatusFailed
	}

	id := g.api.QueryContext(dpy, share, FBConfigID)
	screen := g.api.QueryContext(dpy, share, Screen)
	configs := g.api.ChooseFBConfig(dpy, screen, []int{FBConfigID, id, None})
	if !debugctx.Verify(l, len(configs) > 0, "matching GLX framebuffer config") {
		return nil, debugctx.StatusFailed
	}

	var ctx Context
	status := debugctx.StatusCreated
	if create := g.api.CreateContextAttribs(); create != nil {
		ctx = create(dpy, configs[0], share, p.DirectRendering, ContextAttribs(p))
	} else {
		l.Warn("unable to create GL debug context",
			"reason", "glXCreateContextAttribsARB unavailable")
		ctx = g.api.CreateLegacyContext(dpy, configs[0], share, p.DirectRendering)
		status = debugctx.StatusLegacy
	}
	if !debugctx.Verify(l, ctx != 0, "GLX context created") {
		return nil, debugctx.StatusFailed
	}
	return &resource{api: g.api, dpy: dpy, ctx: ctx}, status
}

type resource struct {
	api API
	dpy Display
	ctx Context
}

func (r *resource) MakeCurrent() {
	if r.ctx == 0 {
		return
	}
	r.api.MakeCurrent(r.api.CurrentDisplay(), r.api.CurrentDrawable(), r.ctx)
}

func (r *resource) Release() {
	if r.dpy != 0 && r.ctx != 0 {
		r.api.DestroyContext(r.dpy, r.ctx)
	}
	r.dpy, r.ctx = 0, 0
}
