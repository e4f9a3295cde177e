// Package xlib binds glx.API to libGL and libX11. It is only functional on
// linux with cgo enabled.
package xlib
