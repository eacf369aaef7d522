package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is one character cell of an off-screen buffer
// Rune 0 marks the right half of a wide character and is skipped on presentation
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is a flat row-major grid of cells
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer filled with blank default-styled cells
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	b := &Buffer{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	b.Clear()
	return b
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// Size returns width and height
func (b *Buffer) Size() (int, int) {
	return b.width, b.height
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blanks with the default style
func (b *Buffer) Clear() {
	b.Fill(' ', tcell.StyleDefault)
}

// Fill sets every cell using exponential copy
func (b *Buffer) Fill(r rune, style tcell.Style) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: r, Style: style}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell, ignoring out of bounds coordinates
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get returns the cell at x, y
func (b *Buffer) Get(x, y int) (Cell, bool) {
	if !b.inBounds(x, y) {
		return Cell{}, false
	}
	return b.cells[y*b.width+x], true
}

// Print writes s starting at x, y and returns the number of columns used
// Text is truncated at the right edge; a wide rune never straddles it
func (b *Buffer) Print(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= b.height || x >= b.width {
		return 0
	}
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > b.width {
			break
		}
		if x >= 0 {
			b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
			if w == 2 && x+1 < b.width {
				b.cells[y*b.width+x+1] = Cell{Rune: 0, Style: style}
			}
		}
		x += w
		used += w
	}
	return used
}

// PrintCentered writes s horizontally centered on row y, truncating to the buffer width
func (b *Buffer) PrintCentered(y int, s string, style tcell.Style) int {
	s = runewidth.Truncate(s, b.width, "")
	x := (b.width - runewidth.StringWidth(s)) / 2
	return b.Print(x, y, s, style)
}

// Blit copies b into dst with its top-left corner at x, y, clipped to dst
func (b *Buffer) Blit(dst *Buffer, x, y int) {
	for row := 0; row < b.height; row++ {
		dy := y + row
		if dy < 0 || dy >= dst.height {
			continue
		}
		srcStart, dstStart, n := 0, x, b.width
		if dstStart < 0 {
			srcStart = -dstStart
			n += dstStart
			dstStart = 0
		}
		if dstStart+n > dst.width {
			n = dst.width - dstStart
		}
		if n <= 0 {
			continue
		}
		copy(dst.cells[dy*dst.width+dstStart:dy*dst.width+dstStart+n],
			b.cells[row*b.width+srcStart:row*b.width+srcStart+n])
	}
}

// String returns the runes of the buffer, one line per row, for tests and debugging
func (b *Buffer) String() string {
	out := make([]rune, 0, (b.width+1)*b.height)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			r := b.cells[y*b.width+x].Rune
			if r == 0 {
				continue
			}
			out = append(out, r)
		}
		out = append(out, '\n')
	}
	return string(out)
}
