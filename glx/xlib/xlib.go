//go:build linux && cgo

package xlib

/*
#cgo LDFLAGS: -lGL -lX11
#include <stdint.h>
#include <X11/Xlib.h>
#include <X11/Xutil.h>
#include <GL/glx.h>

typedef GLXContext (*createContextAttribsProc)(Display*, GLXFBConfig,
	GLXContext, Bool, const int*);

static uintptr_t currentDisplay(void) {
	return (uintptr_t)glXGetCurrentDisplay();
}

static uintptr_t currentContext(void) {
	return (uintptr_t)glXGetCurrentContext();
}

static uintptr_t currentDrawable(void) {
	return (uintptr_t)glXGetCurrentDrawable();
}

static int queryContext(uintptr_t dpy, uintptr_t ctx, int attribute) {
	int value = 0;
	glXQueryContext((Display*)dpy, (GLXContext)ctx, attribute, &value);
	return value;
}

static int chooseFBConfig(uintptr_t dpy, int screen, const int *attribs,
		uintptr_t *out, int max) {
	int count = 0;
	GLXFBConfig *configs = glXChooseFBConfig((Display*)dpy, screen, attribs,
		&count);
	if (configs == NULL) {
		return 0;
	}
	if (count > max) {
		count = max;
	}
	for (int i = 0; i < count; i++) {
		out[i] = (uintptr_t)configs[i];
	}
	XFree(configs);
	return count;
}

static const char *extensions(void) {
	Display *dpy = glXGetCurrentDisplay();
	if (dpy == NULL) {
		return NULL;
	}
	return glXQueryExtensionsString(dpy, DefaultScreen(dpy));
}

static uintptr_t lookupCreateContextAttribs(void) {
	return (uintptr_t)glXGetProcAddressARB(
		(const GLubyte*)"glXCreateContextAttribsARB");
}

static uintptr_t createContextAttribs(uintptr_t proc, uintptr_t dpy,
		uintptr_t config, uintptr_t share, int direct, const int *attribs) {
	return (uintptr_t)((createContextAttribsProc)proc)((Display*)dpy,
		(GLXFBConfig)config, (GLXContext)share, direct ? True : False, attribs);
}

static uintptr_t createLegacyContext(uintptr_t dpy, uintptr_t config,
		uintptr_t share, int direct) {
	XVisualInfo *vis = glXGetVisualFromFBConfig((Display*)dpy,
		(GLXFBConfig)config);
	if (vis == NULL) {
		return 0;
	}
	GLXContext ctx = glXCreateContext((Display*)dpy, vis, (GLXContext)share,
		direct ? True : False);
	XFree(vis);
	return (uintptr_t)ctx;
}

static void destroyContext(uintptr_t dpy, uintptr_t ctx) {
	glXDestroyContext((Display*)dpy, (GLXContext)ctx);
}

static int makeCurrent(uintptr_t dpy, uintptr_t draw, uintptr_t ctx) {
	return glXMakeCurrent((Display*)dpy, (GLXDrawable)draw, (GLXContext)ctx);
}
*/
import "C"

import (
	"strings"

	"github.com/QuestScreen/gldebug/glx"
)

const maxConfigs = 16

// Native is glx.API implemented with libGL.
type Native struct{}

var _ glx.API = Native{}

// NewPlatform returns a glx.Platform using libGL.
func NewPlatform() *glx.Platform {
	return glx.NewPlatform(Native{})
}

func (Native) CurrentDisplay() glx.Display {
	return glx.Display(C.currentDisplay())
}

func (Native) CurrentContext() glx.Context {
	return glx.Context(C.currentContext())
}

func (Native) CurrentDrawable() glx.Drawable {
	return glx.Drawable(C.currentDrawable())
}

func (Native) QueryContext(dpy glx.Display, ctx glx.Context, attribute int) int {
	return int(C.queryContext(C.uintptr_t(dpy), C.uintptr_t(ctx), C.int(attribute)))
}

func (Native) ChooseFBConfig(dpy glx.Display, screen int,
	attribs []int) []glx.FBConfig {
	cAttribs := toCInts(attribs)
	var out [maxConfigs]C.uintptr_t
	n := int(C.chooseFBConfig(C.uintptr_t(dpy), C.int(screen), &cAttribs[0],
		&out[0], maxConfigs))
	ret := make([]glx.FBConfig, n)
	for i := range ret {
		ret[i] = glx.FBConfig(out[i])
	}
	return ret
}

func hasExtension(name string) bool {
	ext := C.extensions()
	if ext == nil {
		return false
	}
	for _, item := range strings.Fields(C.GoString(ext)) {
		if item == name {
			return true
		}
	}
	return false
}

// CreateContextAttribs returns nil unless the display advertises
// GLX_ARB_create_context; glXGetProcAddressARB alone is not conclusive since
// it may return a stub for unknown names.
func (Native) CreateContextAttribs() glx.CreateContextAttribsFunc {
	if !hasExtension("GLX_ARB_create_context") {
		return nil
	}
	proc := C.lookupCreateContextAttribs()
	if proc == 0 {
		return nil
	}
	return func(dpy glx.Display, config glx.FBConfig, share glx.Context,
		direct bool, attribs []int) glx.Context {
		cAttribs := toCInts(attribs)
		return glx.Context(C.createContextAttribs(proc, C.uintptr_t(dpy),
			C.uintptr_t(config), C.uintptr_t(share), cBool(direct), &cAttribs[0]))
	}
}

func (Native) CreateLegacyContext(dpy glx.Display, config glx.FBConfig,
	share glx.Context, direct bool) glx.Context {
	return glx.Context(C.createLegacyContext(C.uintptr_t(dpy),
		C.uintptr_t(config), C.uintptr_t(share), cBool(direct)))
}

func (Native) DestroyContext(dpy glx.Display, ctx glx.Context) {
	C.destroyContext(C.uintptr_t(dpy), C.uintptr_t(ctx))
}

func (Native) MakeCurrent(dpy glx.Display, draw glx.Drawable,
	ctx glx.Context) bool {
	return C.makeCurrent(C.uintptr_t(dpy), C.uintptr_t(draw), C.uintptr_t(ctx)) != 0
}

func toCInts(values []int) []C.int {
	ret := make([]C.int, len(values), len(values)+1)
	for i, v := range values {
		ret[i] = C.int(v)
	}
	if len(ret) == 0 || ret[len(ret)-1] != glx.None {
		ret = append(ret, glx.None)
	}
	return ret
}

func cBool(b bool) C.int {
	if b {
		return 1
	}
	return 0
}
