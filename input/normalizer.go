package input

import "fmt"

const defaultEventQueueSize = 20

// Normalizer turns raw key/mouse signals into edge-triggered logical events
// Not safe for concurrent use; owned by the frame loop
type Normalizer struct {
	source Source
	keys   *HeldKeys
}

// NewNormalizer creates a normalizer reading from source and tracking state in keys
func NewNormalizer(source Source, keys *HeldKeys) *Normalizer {
	if keys == nil {
		keys = NewHeldKeys()
	}
	return &Normalizer{
		source: source,
		keys:   keys,
	}
}

// Keys returns the held-key table
func (n *Normalizer) Keys() *HeldKeys {
	return n.keys
}

// Poll drains the source and returns this frame's events
func (n *Normalizer) Poll() []Event {
	if n.source == nil {
		return nil
	}
	return n.Normalize(n.source.Signals())
}

// Normalize converts signals to events preserving arrival order
// A synthetic KeyPress always directly follows the KeyDown/KeyUp that produced it
func (n *Normalizer) Normalize(signals []RawSignal) []Event {
	events := make([]Event, 0, max(defaultEventQueueSize, len(signals)*2))

	for _, sig := range signals {
		switch sig.Kind {
		case SignalKey:
			e := Event{
				Type: EventKeyUp,
				Code: sig.Code,
				Mods: Modifiers{
					Shift: sig.Shift,
					Alt:   sig.Alt,
					Ctrl:  sig.Ctrl,
				},
			}
			if sig.Code.IsPrintable() {
				e.Char = sig.Char
				e.Printable = true
			}
			if sig.Pressed {
				e.Type = EventKeyDown
			}

			press, ok := n.detectKeyPress(e)
			events = append(events, e)
			if ok {
				events = append(events, press)
			}

		case SignalMouse:
			events = append(events, Event{Type: EventMouse})
		}
	}

	return events
}

// detectKeyPress updates held state and returns the synthetic press for e, if any
// A repeat KeyDown while held counts as a completed tap; a KeyUp always does
// e must be KeyDown or KeyUp, anything else is a caller bug
func (n *Normalizer) detectKeyPress(e Event) (Event, bool) {
	switch e.Type {
	case EventKeyDown:
		if n.keys.IsHeld(e.Code) {
			return pressFrom(e), true
		}
		n.keys.press(e.Code)
		return Event{}, false

	case EventKeyUp:
		n.keys.release(e.Code)
		return pressFrom(e), true

	default:
		panic(fmt.Sprintf("input: edge detection called with %s event", e.Type))
	}
}

func pressFrom(e Event) Event {
	e.Type = EventKeyPress
	return e
}
