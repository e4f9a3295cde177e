/*
Package display provides the host window of the viewer and its render loop.
*/
package display

import (
	"log"
	"time"
)

// Window is a host window with a current GL context.
type Window interface {
	// GLSwap presents the back buffer.
	GLSwap()
	// Poll processes pending events. It returns done=true and the return value
	// of the application if the window should close. It blocks for at most
	// wait.
	Poll(wait time.Duration) (done bool, code int)
	// DrawableSize returns the size of the drawable in pixels.
	DrawableSize() (width, height int32)
	Destroy()
}

// Display renders frames into a Window.
type Display struct {
	Window
	// Render draws a single frame. The GL context to render with is current.
	Render func(frame int64)
}

// RenderLoop renders until the window is closed or maxFrames frames have been
// rendered (maxFrames <= 0 means no limit). It returns the application's
// return value. This function MUST be called in the main thread.
func (d *Display) RenderLoop(maxFrames int64) int {
	var start = time.Now()
	var frameCount = int64(0)
	var total = int64(0)

	for {
		curTime := time.Now()
		if d.Render != nil {
			d.Render(total)
		}
		d.GLSwap()
		frameCount++
		total++
		if curTime.Sub(start) >= time.Second {
			log.Printf("FPS: %d\n", frameCount)
			start = curTime
			frameCount = 0
		}
		if maxFrames > 0 && total >= maxFrames {
			return 0
		}
		if done, code := d.Poll(time.Second / 60); done {
			return code
		}
	}
}
