package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a key name cannot be resolved
var ErrUnknownKey = errors.New("unknown key")

// keyToName maps named Key constants to canonical config string names
var keyToName = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",

	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyHome:     "home",
	KeyEnd:      "end",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",

	KeyF1:  "f1",
	KeyF2:  "f2",
	KeyF3:  "f3",
	KeyF4:  "f4",
	KeyF5:  "f5",
	KeyF6:  "f6",
	KeyF7:  "f7",
	KeyF8:  "f8",
	KeyF9:  "f9",
	KeyF10: "f10",
	KeyF11: "f11",
	KeyF12: "f12",
}

// Rune aliases for keys that read badly as bare characters in config files
var runeToName = map[rune]string{
	' ':  "space",
	'\\': "backslash",
	'#':  "hash",
}

var (
	nameToKey  map[string]Key
	nameToRune map[string]rune
)

func init() {
	nameToKey = make(map[string]Key, len(keyToName))
	for k, v := range keyToName {
		nameToKey[v] = k
	}
	nameToKey["esc"] = KeyEscape
	nameToKey["return"] = KeyEnter
	nameToKey["shift_tab"] = KeyBacktab

	nameToRune = make(map[string]rune, len(runeToName))
	for r, v := range runeToName {
		nameToRune[v] = r
	}
}

// ParseKey resolves a config key name to a Key
// Accepts canonical names, rune aliases and single characters
func ParseKey(name string) (Key, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if k, ok := nameToKey[lower]; ok {
		return k, nil
	}
	if r, ok := nameToRune[lower]; ok {
		return RuneKey(r), nil
	}

	runes := []rune(name)
	if len(runes) == 1 {
		return RuneKey(runes[0]), nil
	}

	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}
