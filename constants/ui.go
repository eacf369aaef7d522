package constants

import "time"

// UI Layout Constants
const (
	// SidePanelWidth is the width of the panel right of the map
	SidePanelWidth = 20

	// BottomPanelHeight is the height of the log panel below the map
	BottomPanelHeight = 8

	// MapMinWidth and MapMinHeight bound the map viewport from below
	MapMinWidth  = 50
	MapMinHeight = 20

	// DefaultScreenWidth and DefaultScreenHeight size the frame when the terminal size is not used
	DefaultScreenWidth  = 100
	DefaultScreenHeight = 40

	// LogLines is how many log lines the bottom panel shows
	LogLines = 5

	// LogCapacity is how many log lines the scene keeps
	LogCapacity = 64

	// WindowTitle is shown in the menu and, where supported, the terminal title
	WindowTitle = "zbuffer"
)

// UI Timing Constants (in milliseconds)
const (
	// MaxFPS is the frame rate ceiling
	MaxFPS = 30

	// CursorBlinkMs is the half-period of the map cursor blink
	CursorBlinkMs = 500

	// WaterShimmerMs is the period of the water animation
	WaterShimmerMs = 800

	// MenuTitleFadeMs is how long the menu title takes to fade in
	MenuTitleFadeMs = 1200
)

// FrameInterval returns the frame period for a frame rate ceiling
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = MaxFPS
	}
	return time.Second / time.Duration(fps)
}
