package debugctx

import "log/slog"

// Profile selects between the core and the compatibility GL profile.
type Profile int

const (
	// CompatibilityProfile keeps the legacy API surface available.
	CompatibilityProfile Profile = iota
	// CoreProfile removes deprecated functionality.
	CoreProfile
)

func (p Profile) String() string {
	if p == CoreProfile {
		return "core"
	}
	return "compatibility"
}

// Params describes the context to be created.
type Params struct {
	Major, Minor int
	// CoreProfile requests a core profile context instead of a compatibility
	// one.
	CoreProfile bool
	// DirectRendering asks for a direct connection to the GPU where the
	// platform distinguishes between direct and indirect rendering.
	DirectRendering bool
}

// Profile returns the profile requested by p.
func (p Params) Profile() Profile {
	if p.CoreProfile {
		return CoreProfile
	}
	return CompatibilityProfile
}

// Status is the outcome of creating a Context.
type Status int

const (
	// StatusInert means nothing was attempted: either debug output is disabled
	// or the platform has no implementation.
	StatusInert Status = iota
	// StatusFailed means creation was attempted and failed. The failure has
	// been reported to the logger.
	StatusFailed
	// StatusCreated means a debug context with the requested attributes
	// exists.
	StatusCreated
	// StatusLegacy means the platform could not honor version, profile and
	// debug flag and created a plain shared context instead.
	StatusLegacy
)

var statusNames = [...]string{"inert", "failed", "created", "legacy"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return "unknown"
	}
	return statusNames[s]
}

// Usable reports whether a native context exists.
func (s Status) Usable() bool {
	return s == StatusCreated || s == StatusLegacy
}

// Resource is a native context owned by a Context.
type Resource interface {
	// MakeCurrent binds the context to the calling thread and the drawable
	// that is current there.
	MakeCurrent()
	// Release destroys the native context.
	Release()
}

// Platform creates native debug contexts sharing with the context that is
// current on the calling thread.
//
// Create must not panic. If it returns a nil Resource, the status must be
// StatusFailed and the reason must have been logged to l.
type Platform interface {
	Create(p Params, l *slog.Logger) (Resource, Status)
}

type inertResource struct{}

func (inertResource) MakeCurrent() {}
func (inertResource) Release()     {}

type inertPlatform struct{}

func (inertPlatform) Create(Params, *slog.Logger) (Resource, Status) {
	return inertResource{}, StatusInert
}

// Inert is the platform used where debug contexts are not implemented. Its
// resources ignore all operations.
var Inert Platform = inertPlatform{}
