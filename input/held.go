package input

// HeldKeys tracks which keys are currently down
// A code is present iff the key is held; absence means released
type HeldKeys struct {
	held map[Key]struct{}
}

// NewHeldKeys creates an empty table
func NewHeldKeys() *HeldKeys {
	return &HeldKeys{held: make(map[Key]struct{})}
}

// IsHeld reports whether k is currently down
func (h *HeldKeys) IsHeld(k Key) bool {
	_, ok := h.held[k]
	return ok
}

// Len returns the number of keys held
func (h *HeldKeys) Len() int {
	return len(h.held)
}

// Reset forgets every held key
func (h *HeldKeys) Reset() {
	clear(h.held)
}

func (h *HeldKeys) press(k Key) {
	h.held[k] = struct{}{}
}

// release is a no-op for keys not held
func (h *HeldKeys) release(k Key) {
	delete(h.held, k)
}
