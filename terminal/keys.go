package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zbuffer/input"
)

// Map rather than switch: several tcell names share a value (KeyEnter is KeyCtrlM)
var keyMap = map[tcell.Key]input.Key{
	tcell.KeyEscape:    input.KeyEscape,
	tcell.KeyEnter:     input.KeyEnter,
	tcell.KeyTab:       input.KeyTab,
	tcell.KeyBacktab:   input.KeyBacktab,
	tcell.KeyBackspace: input.KeyBackspace,
	tcell.KeyDelete:    input.KeyDelete,
	tcell.KeyInsert:    input.KeyInsert,
	tcell.KeyUp:        input.KeyUp,
	tcell.KeyDown:      input.KeyDown,
	tcell.KeyLeft:      input.KeyLeft,
	tcell.KeyRight:     input.KeyRight,
	tcell.KeyHome:      input.KeyHome,
	tcell.KeyEnd:       input.KeyEnd,
	tcell.KeyPgUp:      input.KeyPageUp,
	tcell.KeyPgDn:      input.KeyPageDown,
	tcell.KeyF1:        input.KeyF1,
	tcell.KeyF2:        input.KeyF2,
	tcell.KeyF3:        input.KeyF3,
	tcell.KeyF4:        input.KeyF4,
	tcell.KeyF5:        input.KeyF5,
	tcell.KeyF6:        input.KeyF6,
	tcell.KeyF7:        input.KeyF7,
	tcell.KeyF8:        input.KeyF8,
	tcell.KeyF9:        input.KeyF9,
	tcell.KeyF10:       input.KeyF10,
	tcell.KeyF11:       input.KeyF11,
	tcell.KeyF12:       input.KeyF12,
}

// translateKey converts a tcell key event into a raw signal with Pressed unset
func translateKey(ev *tcell.EventKey) (input.RawSignal, bool) {
	mods := ev.Modifiers()
	sig := input.RawSignal{
		Kind:  input.SignalKey,
		Shift: mods&tcell.ModShift != 0,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		r := ev.Rune()
		sig.Code, sig.Char = input.RuneKey(r), r
		return sig, true

	case keyMap[k] != input.KeyNone:
		sig.Code = keyMap[k]
		return sig, true

	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		sig.Code, sig.Char, sig.Ctrl = input.RuneKey(r), r, true
		return sig, true
	}
	return input.RawSignal{}, false
}
