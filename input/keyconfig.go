package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownIntent is returned for action names with no Intent
var ErrUnknownIntent = errors.New("unknown action")

// Override applies config keymap entries (key name -> action name) on top of kt
// The action "none" removes a binding. Nothing is applied if any entry is invalid
func (kt *KeyTable) Override(entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	// Sorted for deterministic error reporting
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	staged := make(map[Key]Intent, len(entries))
	for _, keyName := range names {
		k, err := ParseKey(keyName)
		if err != nil {
			return fmt.Errorf("keys: %q: %w", keyName, err)
		}

		intent, err := resolveAction(entries[keyName])
		if err != nil {
			return fmt.Errorf("keys: %q: %w", keyName, err)
		}

		staged[k] = intent
	}

	for k, intent := range staged {
		kt.Bind(k, intent)
	}
	return nil
}

// resolveAction converts an action name string to an Intent
func resolveAction(name string) (Intent, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	intent, ok := IntentByName(name)
	if !ok {
		return IntentNone, fmt.Errorf("%w: %q", ErrUnknownIntent, name)
	}
	return intent, nil
}
