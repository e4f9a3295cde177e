//go:build linux && cgo

package main

import (
	"github.com/QuestScreen/gldebug/debugctx"
	"github.com/QuestScreen/gldebug/glx/xlib"
)

func nativePlatform() debugctx.Platform {
	return xlib.NewPlatform()
}
