// Package hotkey detects global key combinations on top of the polling
// engine.
package hotkey

import (
	"errors"
	"fmt"
	"strings"

	"keypoll/engine"
	"keypoll/keycode"
)

type Hotkey interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
}

var ErrBadCombo = errors.New("invalid hotkey")

// Combo is a key plus the modifiers that must be held when it goes down.
type Combo struct {
	Key   keycode.Code
	Ctrl  bool
	Shift bool
	Alt   bool
}

// Parse reads combos such as "ctrl+shift+space" or "alt+F4". The last part
// is the key; everything before it must be a modifier.
func Parse(text string) (Combo, error) {
	parts := strings.Split(text, "+")
	var c Combo
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return Combo{}, fmt.Errorf("%w: empty part in %q", ErrBadCombo, text)
		}
		if i == len(parts)-1 {
			key, err := keycode.Parse(p)
			if err != nil {
				return Combo{}, fmt.Errorf("%w: %w", ErrBadCombo, err)
			}
			c.Key = key
			break
		}
		switch strings.ToLower(p) {
		case "ctrl", "control":
			c.Ctrl = true
		case "shift":
			c.Shift = true
		case "alt", "menu":
			c.Alt = true
		default:
			return Combo{}, fmt.Errorf("%w: %q is not a modifier", ErrBadCombo, p)
		}
	}
	return c, nil
}

func (c Combo) String() string {
	var parts []string
	if c.Ctrl {
		parts = append(parts, "ctrl")
	}
	if c.Shift {
		parts = append(parts, "shift")
	}
	if c.Alt {
		parts = append(parts, "alt")
	}
	parts = append(parts, strings.ToLower(c.Key.String()))
	return strings.Join(parts, "+")
}

// Codes returns what the engine must watch to detect c.
func (c Combo) Codes() []keycode.Code {
	var codes []keycode.Code
	if c.Ctrl {
		codes = append(codes, keycode.Control)
	}
	if c.Shift {
		codes = append(codes, keycode.Shift)
	}
	if c.Alt {
		codes = append(codes, keycode.Menu)
	}
	return append(codes, c.Key)
}

// Matches reports whether every modifier c requires is held in m. Extra
// modifiers are allowed.
func (c Combo) Matches(m engine.Modifiers) bool {
	return (!c.Ctrl || m.Ctrl) && (!c.Shift || m.Shift) && (!c.Alt || m.Alt)
}
