// Package terminal adapts a tcell screen to the frame loop.
//
// A Screen is both the raw input source read by the normalizer and the sink the
// composed frame is presented to:
//   - Input is polled on a background goroutine and drained without blocking once per frame
//   - Terminals report no key release, so every key event becomes a press and a release signal
//   - Ctrl+C stops the screen; the frame loop observes it through Running
//   - Resize events resync the screen, the composition size stays fixed
package terminal
