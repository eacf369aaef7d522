package input

import (
	"fmt"
	"unicode"
)

// Key identifies a physical key independent of modifier state
type Key int32

const (
	KeyNone Key = iota

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete
	KeyInsert

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// keyRuneBase offsets rune keys above every named key and below nothing valid
const keyRuneBase Key = 1 << 21

// RuneKey returns the code of the key that produces r
// Letters fold to lower case so Shift+a and a share one code
func RuneKey(r rune) Key {
	return keyRuneBase + Key(unicode.ToLower(r))
}

// Rune returns the base rune of a rune key
func (k Key) Rune() (rune, bool) {
	if k < keyRuneBase {
		return 0, false
	}
	return rune(k - keyRuneBase), true
}

// IsPrintable reports whether the key produces a printable character
func (k Key) IsPrintable() bool {
	r, ok := k.Rune()
	return ok && unicode.IsPrint(r)
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	if r, ok := k.Rune(); ok {
		if name, ok := runeToName[r]; ok {
			return name
		}
		return string(r)
	}
	return fmt.Sprintf("key(%d)", int32(k))
}
