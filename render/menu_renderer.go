package render

import (
	"github.com/lixenwraith/zbuffer/stage"
)

// MenuRenderer draws the menu into a single full-frame buffer
type MenuRenderer struct {
	root *Buffer
}

// NewMenuRenderer allocates the menu buffer
func NewMenuRenderer(width, height int) *MenuRenderer {
	return &MenuRenderer{root: NewBuffer(width, height)}
}

func (r *MenuRenderer) Kind() stage.Kind {
	return stage.KindMenu
}

func (r *MenuRenderer) Draw(s stage.Stage) *Buffer {
	m, ok := s.(*stage.Menu)
	if !ok {
		mismatch(r, s)
	}
	r.Update(m)
	return r.root
}

// Update redraws the title, the items and, when toggled, the help text
func (r *MenuRenderer) Update(m *stage.Menu) {
	bg := TileMapBackground.Style()
	r.root.Fill(' ', bg)

	items := m.Items()
	top := r.root.Height()/2 - len(items) - 2
	if top < 0 {
		top = 0
	}
	r.root.PrintCentered(top, m.Title(), bg.Foreground(TitleColor(m.TitleIntensity())).Bold(true))

	row := top + 2
	for i, item := range items {
		label, style := "  "+item.String()+"  ", bg.Foreground(RgbUIDim)
		if i == m.Selected() {
			label, style = "> "+item.String()+" <", bg.Foreground(RgbWhite).Bold(true)
		}
		r.root.PrintCentered(row, label, style)
		row++
	}

	if !m.ShowHelp() {
		return
	}
	row++
	for _, line := range stage.HelpText {
		r.root.PrintCentered(row, line, bg.Foreground(RgbUIAccent))
		row++
	}
}
