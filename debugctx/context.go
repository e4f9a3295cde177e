package debugctx

import (
	"log/slog"
	"sync"
)

// Context is a debug context companion to the application's current GL
// context. The zero value is not usable; create one with New.
//
// A Context must not be made current from multiple threads at the same time.
type Context struct {
	params   Params
	flags    Flags
	log      *slog.Logger
	visual   VisualSelector
	res      Resource
	status   Status
	released sync.Once
}

type options struct {
	flags    Flags
	platform Platform
	log      *slog.Logger
	visual   VisualSelector
}

// Option configures New.
type Option func(*options)

// WithFlags replaces the flags read from the environment.
func WithFlags(f Flags) Option {
	return func(o *options) { o.flags = f }
}

// WithPlatform selects the platform that creates the native context. The
// default is Inert.
func WithPlatform(p Platform) Option {
	return func(o *options) { o.platform = p }
}

// WithLogger overrides the package logger for this Context.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithVisualSelector sets the selector used by ChooseMacVisual.
func WithVisualSelector(s VisualSelector) Option {
	return func(o *options) { o.visual = s }
}

// New creates a debug context sharing with the context current on the calling
// thread, requesting the given version and profile with debug output enabled.
//
// If debug output is disabled, nothing is created. New never fails; check
// Status to see the outcome.
func New(major, minor int, coreProfile, directRendering bool,
	opts ...Option) *Context {
	o := options{platform: Inert, visual: noVisual}
	o.flags = ProcessFlags()
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = Logger()
	}
	if o.visual == nil {
		o.visual = noVisual
	}
	c := &Context{
		params: Params{Major: major, Minor: minor, CoreProfile: coreProfile,
			DirectRendering: directRendering},
		flags: o.flags, log: o.log, visual: o.visual, status: StatusInert}
	if !c.flags.DebugOutput {
		return c
	}
	c.res, c.status = o.platform.Create(c.params, c.log)
	if c.res == nil && c.status != StatusFailed {
		c.status = StatusFailed
	}
	c.log.Debug("debug context", "version", c.version(),
		"profile", c.params.Profile(), "status", c.status)
	return c
}

func (c *Context) version() [2]int {
	return [2]int{c.params.Major, c.params.Minor}
}

// Params returns the parameters the context was requested with.
func (c *Context) Params() Params {
	return c.params
}

// Status returns the outcome of creation.
func (c *Context) Status() Status {
	return c.status
}

// MakeCurrent binds the debug context to the calling thread and the drawable
// currently bound there. Does nothing if debug output is disabled or if
// creation failed.
func (c *Context) MakeCurrent() {
	if !c.flags.DebugOutput {
		return
	}
	if !Verify(c.log, c.res != nil, "debug context exists") {
		return
	}
	c.res.MakeCurrent()
}

// Release destroys the native context, if any. Calling Release more than once
// is harmless. MakeCurrent after Release reports a failed verification.
func (c *Context) Release() {
	c.released.Do(func() {
		if c.res != nil {
			c.res.Release()
			c.res = nil
		}
	})
}

// ChooseMacVisual returns a core profile visual if the context was requested
// with a core profile or GLF_ENABLE_CORE_PROFILE is set, and nil otherwise.
func (c *Context) ChooseMacVisual() Visual {
	if c.params.CoreProfile || c.flags.CoreProfile {
		return c.visual()
	}
	return nil
}
