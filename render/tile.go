package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/core"
)

// Tile is the visual of a single map or panel cell
// A tile with a non-zero Period alternates to its Alt glyph and AltFg every other period
type Tile struct {
	Glyph rune
	Fg    tcell.Color
	Bg    tcell.Color
	Bold  bool

	Period uint64
	Alt    rune
	AltFg  tcell.Color
}

var (
	TileMapBackground = Tile{Glyph: ' ', Fg: RgbUIText, Bg: RgbBackground}
	TileUIBackground  = Tile{Glyph: ' ', Fg: RgbUIText, Bg: RgbUIBackground}
	TileCursor        = Tile{
		Glyph: 'X', Fg: RgbCursor, Bg: RgbBackground, Bold: true,
		Period: constants.CursorBlinkMs, Alt: 'x', AltFg: RgbCursorDim,
	}
	TileUnknown = Tile{Glyph: '?', Fg: RgbUnknown, Bg: RgbBackground}
)

var objectTiles = map[core.VisibleObject]Tile{
	core.ObjectGrass: {Glyph: '"', Fg: RgbGrass, Bg: RgbBackground},
	core.ObjectDirt:  {Glyph: '.', Fg: RgbDirt, Bg: RgbBackground},
	core.ObjectWater: {
		Glyph: '~', Fg: RgbWater, Bg: RgbWaterDeep,
		Period: constants.WaterShimmerMs, Alt: '≈', AltFg: RgbWaterFoam,
	},
	core.ObjectRock:     {Glyph: '#', Fg: RgbRock, Bg: RgbBackground},
	core.ObjectTree:     {Glyph: '♣', Fg: RgbTree, Bg: RgbBackground, Bold: true},
	core.ObjectMushroom: {Glyph: ',', Fg: RgbMushroom, Bg: RgbBackground},
	core.ObjectRabbit:   {Glyph: 'r', Fg: RgbRabbit, Bg: RgbBackground, Bold: true},
	core.ObjectFox:      {Glyph: 'f', Fg: RgbFox, Bg: RgbBackground, Bold: true},
}

// TileFor returns the tile of obj, unmapped objects get TileUnknown
func TileFor(obj core.VisibleObject) Tile {
	if t, ok := objectTiles[obj]; ok {
		return t
	}
	return TileUnknown
}

// At resolves the glyph and style of the tile at elapsed time tMs
func (t Tile) At(tMs uint64) (rune, tcell.Style) {
	glyph, fg := t.Glyph, t.Fg
	if t.Period > 0 && (tMs/t.Period)%2 == 1 {
		if t.Alt != 0 {
			glyph = t.Alt
		}
		if t.AltFg != tcell.ColorDefault {
			fg = t.AltFg
		}
	}
	return glyph, tcell.StyleDefault.Foreground(fg).Background(t.Bg).Bold(t.Bold)
}

// Put draws the tile into b at x, y
func (t Tile) Put(b *Buffer, x, y int, tMs uint64) {
	r, style := t.At(tMs)
	b.Set(x, y, r, style)
}

// Style returns the static style of the tile
func (t Tile) Style() tcell.Style {
	_, style := t.At(0)
	return style
}
