//go:build !linux || !cgo

package main

import "github.com/QuestScreen/gldebug/debugctx"

// no native debug context implementation for this platform
func nativePlatform() debugctx.Platform {
	return debugctx.Inert
}
