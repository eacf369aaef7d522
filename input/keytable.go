package input

// KeyTable maps keys to intents
// Lookups go through Resolve so only completed taps (KeyPress) trigger actions
type KeyTable struct {
	bindings map[Key]Intent
}

// NewKeyTable creates an empty table
func NewKeyTable() *KeyTable {
	return &KeyTable{bindings: make(map[Key]Intent)}
}

// DefaultKeyTable returns the default key bindings: arrows, vi keys, and vi diagonals
func DefaultKeyTable() *KeyTable {
	kt := NewKeyTable()

	// Arrows and navigation cluster
	kt.Bind(KeyUp, IntentMoveUp)
	kt.Bind(KeyDown, IntentMoveDown)
	kt.Bind(KeyLeft, IntentMoveLeft)
	kt.Bind(KeyRight, IntentMoveRight)
	kt.Bind(KeyHome, IntentMoveUpLeft)
	kt.Bind(KeyPageUp, IntentMoveUpRight)
	kt.Bind(KeyEnd, IntentMoveDownLeft)
	kt.Bind(KeyPageDown, IntentMoveDownRight)

	// vi motions
	kt.Bind(RuneKey('k'), IntentMoveUp)
	kt.Bind(RuneKey('j'), IntentMoveDown)
	kt.Bind(RuneKey('h'), IntentMoveLeft)
	kt.Bind(RuneKey('l'), IntentMoveRight)
	kt.Bind(RuneKey('y'), IntentMoveUpLeft)
	kt.Bind(RuneKey('u'), IntentMoveUpRight)
	kt.Bind(RuneKey('b'), IntentMoveDownLeft)
	kt.Bind(RuneKey('n'), IntentMoveDownRight)

	kt.Bind(KeyEnter, IntentConfirm)
	kt.Bind(RuneKey(' '), IntentConfirm)
	kt.Bind(KeyEscape, IntentBack)
	kt.Bind(RuneKey('.'), IntentWait)

	return kt
}

// Bind maps k to intent; IntentNone removes the binding
func (kt *KeyTable) Bind(k Key, intent Intent) {
	if intent == IntentNone {
		delete(kt.bindings, k)
		return
	}
	kt.bindings[k] = intent
}

// Lookup returns the intent bound to k
func (kt *KeyTable) Lookup(k Key) Intent {
	return kt.bindings[k]
}

// Len returns the number of bindings
func (kt *KeyTable) Len() int {
	return len(kt.bindings)
}

// Clone returns an independent copy
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{bindings: make(map[Key]Intent, len(kt.bindings))}
	for k, v := range kt.bindings {
		c.bindings[k] = v
	}
	return c
}

// Resolve maps a completed tap to its intent; other event types resolve to IntentNone
// Bindings are for unmodified keys, so Ctrl or Alt chords resolve to IntentNone
func (kt *KeyTable) Resolve(e Event) Intent {
	if e.Type != EventKeyPress || e.Mods.Ctrl || e.Mods.Alt {
		return IntentNone
	}
	return kt.bindings[e.Code]
}

// ResolveAll maps every event in order, dropping IntentNone
func (kt *KeyTable) ResolveAll(events []Event) []Intent {
	var intents []Intent
	for _, e := range events {
		if i := kt.Resolve(e); i != IntentNone {
			intents = append(intents, i)
		}
	}
	return intents
}
