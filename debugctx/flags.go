package debugctx

import "github.com/QuestScreen/gldebug/env"

// Environment variables controlling this package.
const (
	DebugOutputVar = "GLF_ENABLE_DEBUG_OUTPUT"
	CoreProfileVar = "GLF_ENABLE_CORE_PROFILE"
)

var (
	debugOutput = env.NewFlag(DebugOutputVar, false)
	coreProfile = env.NewFlag(CoreProfileVar, false)
)

// IsEnabledDebugOutput reports whether debug context creation is requested.
// The environment is read once; later calls return the cached value.
func IsEnabledDebugOutput() bool {
	return debugOutput.Get()
}

// IsEnabledCoreProfile reports whether core profile contexts are requested.
// The environment is read once; later calls return the cached value.
func IsEnabledCoreProfile() bool {
	return coreProfile.Get()
}

// Flags holds the process wide settings a Context is created with.
type Flags struct {
	DebugOutput bool
	CoreProfile bool
}

// ProcessFlags returns the flags resolved from the environment.
func ProcessFlags() Flags {
	return Flags{DebugOutput: IsEnabledDebugOutput(),
		CoreProfile: IsEnabledCoreProfile()}
}
