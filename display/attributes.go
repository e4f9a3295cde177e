package display

import (
	"log"

	"github.com/QuestScreen/gldebug/config"
	"github.com/veandco/go-sdl2/sdl"
)

// Highest version available on core-only platforms.
const coreOnlyMajor, coreOnlyMinor = 4, 1

func atLeast(cfg config.ContextConfig, major, minor int) bool {
	return cfg.Major > major || (cfg.Major == major && cfg.Minor >= minor)
}

func hostContext(cfg config.ContextConfig, coreOnly bool) config.ContextConfig {
	if !coreOnly {
		return cfg
	}
	if !atLeast(cfg, 3, 2) {
		cfg.CoreProfile = false
		return cfg
	}
	cfg.CoreProfile = true
	if atLeast(cfg, coreOnlyMajor, coreOnlyMinor) {
		cfg.Major, cfg.Minor = coreOnlyMajor, coreOnlyMinor
	}
	return cfg
}

// HostContext returns the context configuration this platform can provide for
// cfg. Platforms that offer 3.2 and later only as core profile get a core
// profile clamped to the highest version they support; older versions stay a
// legacy context.
func HostContext(cfg config.ContextConfig) config.ContextConfig {
	return hostContext(cfg, coreOnly)
}

// setGLAttributes prepares SDL to create the host context. cfg must have
// passed through HostContext.
func setGLAttributes(cfg config.ContextConfig) {
	if cfg.CoreProfile {
		log.Printf("using OpenGL %d.%d core profile\n", cfg.Major, cfg.Minor)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK,
			sdl.GL_CONTEXT_PROFILE_CORE)
	} else {
		log.Printf("using OpenGL %d.%d compatibility profile\n", cfg.Major, cfg.Minor)
		sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK,
			sdl.GL_CONTEXT_PROFILE_COMPATIBILITY)
	}
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
}
