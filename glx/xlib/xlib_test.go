//go:build linux && cgo

package xlib

import (
	"log/slog"
	"runtime"
	"testing"

	"github.com/QuestScreen/gldebug/debugctx"
	"github.com/QuestScreen/gldebug/glx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

func ints(values []int) []int {
	c := toCInts(values)
	ret := make([]int, len(c))
	for i := range c {
		ret[i] = int(c[i])
	}
	return ret
}

func TestToCIntsTerminates(t *testing.T) {
	assert.Equal(t, []int{glx.None}, ints(nil))
	assert.Equal(t, []int{glx.FBConfigID, 7, glx.None}, ints([]int{glx.FBConfigID, 7}))
	assert.Equal(t, []int{glx.FBConfigID, 7, glx.None},
		ints([]int{glx.FBConfigID, 7, glx.None}))
}

// currentGLX brings up a hidden SDL window whose context is current through
// GLX, skipping the test if there is no X display or SDL does not use GLX.
func currentGLX(t *testing.T) {
	runtime.LockOSThread()
	t.Cleanup(runtime.UnlockOSThread)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		t.Skip("no display:", err)
	}
	t.Cleanup(sdl.Quit)
	window, err := sdl.CreateWindow("xlib test", sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED, 16, 16, sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		t.Skip("no GL window:", err)
	}
	t.Cleanup(func() { window.Destroy() })
	host, err := window.GLCreateContext()
	if err != nil {
		t.Skip("no GL context:", err)
	}
	t.Cleanup(func() { sdl.GLDeleteContext(host) })
	if (Native{}).CurrentDisplay() == 0 {
		t.Skip("current context is not a GLX context")
	}
}

func TestNativePlatform(t *testing.T) {
	currentGLX(t)
	api := Native{}
	host := api.CurrentContext()
	require.NotZero(t, host)

	l := slog.New(slog.NewTextHandler(testWriter{t}, nil))
	c := debugctx.New(2, 1, false, true,
		debugctx.WithFlags(debugctx.Flags{DebugOutput: true}),
		debugctx.WithPlatform(NewPlatform()), debugctx.WithLogger(l))
	require.True(t, c.Status().Usable(), "status %s", c.Status())
	assert.Equal(t, host, api.CurrentContext())

	draw := api.CurrentDrawable()
	c.MakeCurrent()
	assert.NotEqual(t, host, api.CurrentContext())

	require.True(t, api.MakeCurrent(api.CurrentDisplay(), draw, host))
	c.Release()
	assert.Equal(t, host, api.CurrentContext())
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}
