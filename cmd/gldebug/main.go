package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pborman/getopt"

	"github.com/QuestScreen/gldebug/config"
	"github.com/QuestScreen/gldebug/debugctx"
	"github.com/QuestScreen/gldebug/debugout/glapi"
	"github.com/QuestScreen/gldebug/display"
	"github.com/QuestScreen/gldebug/glfwctx"
	"github.com/QuestScreen/gldebug/sdlctx"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	runtime.LockOSThread()
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	dir = filepath.Join(dir, "gldebug")
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Println("unable to create config directory: " + err.Error())
	}
	return filepath.Join(dir, "config.yaml")
}

func main() {
	configPath := getopt.StringLong("config", 'c', "", "path to config.yaml")
	fullscreenFlag := getopt.BoolLong("fullscreen", 'f', "start in fullscreen")
	width := getopt.Int32Long("width", 'w', 0, "width of the window")
	height := getopt.Int32Long("height", 'h', 0, "height of the window")
	backendName := getopt.StringLong("backend", 'b', "", "native, sdl or glfw")
	frames := getopt.Int64Long("frames", 'n', 0,
		"exit after rendering this many frames (0: no limit)")
	getopt.Parse()

	path := *configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("unable to read config. error was:\n  %s\n", err.Error())
	}
	if *width != 0 && *height != 0 {
		cfg.Width, cfg.Height, cfg.Fullscreen = *width, *height, false
	} else if *fullscreenFlag {
		cfg.Fullscreen = true
	}
	if *backendName != "" {
		if cfg.Backend, err = config.ParseBackend(*backendName); err != nil {
			log.Fatal(err)
		}
	}

	cfg.Context = display.HostContext(cfg.Context)

	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: cfg.LogLevel}))
	debugctx.SetLogger(logger)
	if !debugctx.IsEnabledDebugOutput() {
		log.Printf("%s is not set, the debug context stays inert\n",
			debugctx.DebugOutputVar)
	}

	var code int
	if cfg.Backend == config.GLFW {
		code = runGLFW(cfg, *frames, logger)
	} else {
		code = runSDL(cfg, *frames, logger)
	}
	os.Exit(code)
}

func runSDL(cfg config.Config, frames int64, logger *slog.Logger) int {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	window, err := display.NewSDLWindow("gldebug", cfg)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer window.Destroy()

	var platform debugctx.Platform = sdlctx.Platform{}
	if cfg.Backend == config.Native {
		platform = nativePlatform()
	}
	dc := newDebugContext(cfg, platform)
	defer dc.Release()
	dc.MakeCurrent()

	d := display.Display{Window: window}
	if !setupGL(dc, window, logger) {
		return 1
	}
	d.Render = func(frame int64) {
		glapi.Clear(pulse(frame), 0.2, 0.3)
	}
	return d.RenderLoop(frames)
}

func runGLFW(cfg config.Config, frames int64, logger *slog.Logger) int {
	if err := glfw.Init(); err != nil {
		log.Println(err)
		return 1
	}
	defer glfw.Terminate()

	window, err := display.NewGLFWWindow("gldebug", cfg)
	if err != nil {
		log.Println(err)
		return 1
	}
	defer window.Destroy()

	dc := newDebugContext(cfg, glfwctx.Platform{})
	defer dc.Release()
	dc.MakeCurrent()
	if !setupGL(dc, window, logger) {
		return 1
	}

	// the GLFW debug context has its own hidden drawable: exercise it, then
	// draw the visible frame with the host context.
	d := display.Display{Window: window}
	d.Render = func(frame int64) {
		dc.MakeCurrent()
		glapi.Clear(pulse(frame), 0.2, 0.3)
		window.MakeCurrent()
		glapi.Clear(pulse(frame), 0.2, 0.3)
	}
	return d.RenderLoop(frames)
}

func newDebugContext(cfg config.Config, platform debugctx.Platform) *debugctx.Context {
	return debugctx.New(cfg.Context.Major, cfg.Context.Minor,
		cfg.Context.CoreProfile, cfg.Context.DirectRendering,
		debugctx.WithPlatform(platform))
}

func setupGL(dc *debugctx.Context, window display.Window,
	logger *slog.Logger) bool {
	if err := glapi.Init(); err != nil {
		log.Println(err)
		return false
	}
	log.Printf("GL version %s, debug context %s\n", glapi.Version(), dc.Status())
	if dc.Status().Usable() {
		if err := glapi.Install(logger); err != nil {
			logger.Warn("debug output unavailable", "error", err)
		}
	}
	glapi.Viewport(window.DrawableSize())
	return true
}

func pulse(frame int64) float32 {
	return float32(frame%120) / 120
}
