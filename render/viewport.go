package render

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/zbuffer/constants"
)

// ErrViewportTooSmall is returned when a frame cannot hold the minimum map viewport
var ErrViewportTooSmall = errors.New("viewport too small")

// Layout holds the panel geometry of the play screen
type Layout struct {
	SidePanelWidth    int
	BottomPanelHeight int
	MapMinWidth       int
	MapMinHeight      int
}

// DefaultLayout returns the compiled-in layout
func DefaultLayout() Layout {
	return Layout{
		SidePanelWidth:    constants.SidePanelWidth,
		BottomPanelHeight: constants.BottomPanelHeight,
		MapMinWidth:       constants.MapMinWidth,
		MapMinHeight:      constants.MapMinHeight,
	}
}

// ViewportSize returns the map viewport size for a frame of width x height
// The map takes what the panels leave; both sides must reach the layout minimum
func ViewportSize(width, height int, layout Layout) (int, int, error) {
	mw := width - layout.SidePanelWidth
	mh := height - layout.BottomPanelHeight
	if mw < layout.MapMinWidth || mh < layout.MapMinHeight {
		return 0, 0, fmt.Errorf("%w: frame %dx%d leaves map %dx%d, need at least %dx%d",
			ErrViewportTooSmall, width, height, mw, mh, layout.MapMinWidth, layout.MapMinHeight)
	}
	return mw, mh, nil
}
