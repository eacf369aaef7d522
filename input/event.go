package input

// EventType discriminates logical input events
type EventType uint8

const (
	EventNone EventType = iota
	EventKeyDown
	EventKeyUp
	EventKeyPress // synthetic, emitted when a tap completes
	EventMouse
)

var eventTypeNames = [...]string{
	EventNone:     "none",
	EventKeyDown:  "key_down",
	EventKeyUp:    "key_up",
	EventKeyPress: "key_press",
	EventMouse:    "mouse",
}

func (t EventType) String() string {
	if int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "invalid"
}

// Modifiers is the modifier state captured with a key signal
type Modifiers struct {
	Shift bool
	Alt   bool
	Ctrl  bool
}

// Event is one logical input event for the current frame
// Char is meaningful only when Printable is set; mouse events carry no detail
type Event struct {
	Type      EventType
	Code      Key
	Char      rune
	Printable bool
	Mods      Modifiers
}

// Character returns the printable character, if the key has one
func (e Event) Character() (rune, bool) {
	return e.Char, e.Printable
}

// IsKey reports whether the event belongs to a key
func (e Event) IsKey() bool {
	return e.Type == EventKeyDown || e.Type == EventKeyUp || e.Type == EventKeyPress
}
