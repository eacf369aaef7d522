package render

import (
	"fmt"

	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/core"
	"github.com/lixenwraith/zbuffer/scene"
	"github.com/lixenwraith/zbuffer/stage"
)

// PlayRenderer composes the map viewport, side panel and bottom panel into a root buffer
type PlayRenderer struct {
	root   *Buffer
	mapBuf *Buffer
	side   *Buffer
	bottom *Buffer
}

// NewPlayRenderer allocates the play buffers for a width x height frame
func NewPlayRenderer(width, height int, layout Layout) (*PlayRenderer, error) {
	mw, mh, err := ViewportSize(width, height, layout)
	if err != nil {
		return nil, err
	}
	return &PlayRenderer{
		root:   NewBuffer(width, height),
		mapBuf: NewBuffer(mw, mh),
		side:   NewBuffer(width-mw, mh),
		bottom: NewBuffer(width, height-mh),
	}, nil
}

func (r *PlayRenderer) Kind() stage.Kind {
	return stage.KindPlay
}

func (r *PlayRenderer) Draw(s stage.Stage) *Buffer {
	p, ok := s.(*stage.Play)
	if !ok {
		mismatch(r, s)
	}
	r.Update(p.Scene())
	return r.root
}

// MapSize returns the map viewport size
func (r *PlayRenderer) MapSize() (int, int) {
	return r.mapBuf.Size()
}

// Update redraws every panel from sc and composes them into the root buffer
func (r *PlayRenderer) Update(sc *scene.Data) {
	r.drawMap(sc)
	r.drawBottom(sc)
	r.drawSide(sc)

	mh := r.mapBuf.Height()
	r.mapBuf.Blit(r.root, 0, 0)
	r.bottom.Blit(r.root, 0, mh)
	r.side.Blit(r.root, r.mapBuf.Width(), 0)
}

func (r *PlayRenderer) drawMap(sc *scene.Data) {
	t := sc.ElapsedMillis()
	r.mapBuf.Fill(TileMapBackground.At(t))

	cursor := sc.Cursor()
	bounds := core.CenteredAround(cursor, r.mapBuf.Width(), r.mapBuf.Height())
	sc.ForEachInRect(bounds, func(loc core.Location, objects []scene.Placement) {
		top := objects[len(objects)-1]
		TileFor(top.Object).Put(r.mapBuf, loc.X-bounds.MinX, loc.Y-bounds.MinY, t)
	})

	// Cursor goes last so nothing covers it
	TileCursor.Put(r.mapBuf, cursor.X-bounds.MinX, cursor.Y-bounds.MinY, t)
}

func (r *PlayRenderer) drawBottom(sc *scene.Data) {
	r.bottom.Fill(TileUIBackground.At(0))
	bg := TileUIBackground.Style()
	for i, entry := range sc.RecentLog(constants.LogLines) {
		r.bottom.Print(1, i, entry.Text, bg.Foreground(LogLineColor(i, constants.LogLines)))
	}
}

func (r *PlayRenderer) drawSide(sc *scene.Data) {
	r.side.Fill(TileUIBackground.At(0))
	bg := TileUIBackground.Style()
	cursor := sc.Cursor()

	r.side.PrintCentered(0, sc.GameTime().String(), bg.Foreground(RgbUIText))
	r.side.PrintCentered(1, fmt.Sprintf("[%4d:%4d]", cursor.X, cursor.Y), bg.Foreground(RgbUIAccent))

	// Topmost object first, as long as rows remain
	objects := sc.ObjectsAt(cursor)
	row := 3
	for i := len(objects) - 1; i >= 0 && row < r.side.Height(); i-- {
		r.side.PrintCentered(row, objects[i].Object.String(), bg.Foreground(RgbUIDim))
		row++
	}
}
