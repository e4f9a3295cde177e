package debugctx

import "unsafe"

// Visual is an opaque platform visual or pixel format handle. nil means "use
// the default visual".
type Visual unsafe.Pointer

// VisualSelector returns a visual suitable for core profile contexts. On
// macOS the Cocoa layer of the host application supplies it; this package
// does not implement one.
type VisualSelector func() Visual

func noVisual() Visual { return nil }
