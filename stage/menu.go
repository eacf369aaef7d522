package stage

import (
	"fmt"
	"log"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/lixenwraith/zbuffer/constants"
	"github.com/lixenwraith/zbuffer/input"
)

// MenuItem is an entry of the main menu
type MenuItem uint8

const (
	ItemNewGame MenuItem = iota
	ItemHelp
)

func (i MenuItem) String() string {
	switch i {
	case ItemNewGame:
		return "New game"
	case ItemHelp:
		return "Help"
	}
	return "?"
}

// HelpText is shown under the menu when Help is toggled on
var HelpText = []string{
	"Arrows or h j k l move the cursor",
	"y u b n move diagonally, . waits",
	"ESC returns to this menu",
	"Ctrl+C quits",
}

// Menu is the main menu stage
type Menu struct {
	cfg      Config
	keys     *input.KeyTable
	items    []MenuItem
	selected int
	showHelp bool

	elapsed        uint64
	title          *gween.Tween
	titleIntensity float32
}

// NewMenu creates a menu with the first item selected and the title faded out
func NewMenu(cfg Config) *Menu {
	return &Menu{
		cfg:   cfg,
		keys:  cfg.keys(),
		items: []MenuItem{ItemNewGame, ItemHelp},
		title: gween.New(0, 1, float32(constants.MenuTitleFadeMs)/1000, ease.OutCubic),
	}
}

func (m *Menu) sealed() {}

// Kind implements Stage
func (m *Menu) Kind() Kind {
	return KindMenu
}

// Tick implements Stage
func (m *Menu) Tick(elapsedMs uint32, events []input.Event) (Transition, error) {
	m.elapsed += uint64(elapsedMs)
	m.titleIntensity, _ = m.title.Update(float32(elapsedMs) / 1000)

	for _, intent := range m.keys.ResolveAll(events) {
		switch intent {
		case input.IntentMoveUp:
			m.selected = (m.selected - 1 + len(m.items)) % len(m.items)
		case input.IntentMoveDown:
			m.selected = (m.selected + 1) % len(m.items)
		case input.IntentBack:
			m.showHelp = false
		case input.IntentConfirm:
			switch m.items[m.selected] {
			case ItemNewGame:
				play, err := NewPlay(m.cfg)
				if err != nil {
					return Continue(), fmt.Errorf("start game: %w", err)
				}
				log.Printf("stage: menu -> play (world %dx%d, seed %d)", m.cfg.WorldWidth, m.cfg.WorldHeight, m.cfg.Seed)
				return SwitchTo(play), nil
			case ItemHelp:
				m.showHelp = !m.showHelp
			}
		}
	}

	return Continue(), nil
}

// Items returns the menu entries in display order
func (m *Menu) Items() []MenuItem {
	return m.items
}

// Selected returns the index of the highlighted item
func (m *Menu) Selected() int {
	return m.selected
}

// ShowHelp reports whether the help text is visible
func (m *Menu) ShowHelp() bool {
	return m.showHelp
}

// Title returns the menu heading
func (m *Menu) Title() string {
	if m.cfg.Title == "" {
		return constants.WindowTitle
	}
	return m.cfg.Title
}

// TitleIntensity is the title fade-in progress in [0, 1]
func (m *Menu) TitleIntensity() float32 {
	return m.titleIntensity
}

// ElapsedMillis returns time spent in this menu
func (m *Menu) ElapsedMillis() uint64 {
	return m.elapsed
}
