package input

// Intent is the semantic action a key press maps to
type Intent uint8

const (
	IntentNone Intent = iota

	// Cursor movement
	IntentMoveUp
	IntentMoveDown
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUpLeft
	IntentMoveUpRight
	IntentMoveDownLeft
	IntentMoveDownRight

	// Stage control
	IntentConfirm // Enter, Space
	IntentBack    // ESC
	IntentWait    // pass a turn without moving
)

var intentNames = map[Intent]string{
	IntentNone:          "none",
	IntentMoveUp:        "move_up",
	IntentMoveDown:      "move_down",
	IntentMoveLeft:      "move_left",
	IntentMoveRight:     "move_right",
	IntentMoveUpLeft:    "move_up_left",
	IntentMoveUpRight:   "move_up_right",
	IntentMoveDownLeft:  "move_down_left",
	IntentMoveDownRight: "move_down_right",
	IntentConfirm:       "confirm",
	IntentBack:          "back",
	IntentWait:          "wait",
}

var nameToIntent map[string]Intent

func init() {
	nameToIntent = make(map[string]Intent, len(intentNames))
	for i, name := range intentNames {
		nameToIntent[name] = i
	}
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "invalid"
}

// IntentByName resolves a config action name
func IntentByName(name string) (Intent, bool) {
	i, ok := nameToIntent[name]
	return i, ok
}

// Delta returns the grid step for movement intents, (0, 0) otherwise
func (i Intent) Delta() (dx, dy int) {
	switch i {
	case IntentMoveUp:
		return 0, -1
	case IntentMoveDown:
		return 0, 1
	case IntentMoveLeft:
		return -1, 0
	case IntentMoveRight:
		return 1, 0
	case IntentMoveUpLeft:
		return -1, -1
	case IntentMoveUpRight:
		return 1, -1
	case IntentMoveDownLeft:
		return -1, 1
	case IntentMoveDownRight:
		return 1, 1
	}
	return 0, 0
}

// IsMove reports whether the intent moves the cursor
func (i Intent) IsMove() bool {
	dx, dy := i.Delta()
	return dx != 0 || dy != 0
}
