package engine

import (
	"fmt"
	"strings"
	"time"

	"keypoll/keycode"
)

// State is the direction of a transition.
type State uint8

const (
	Released State = iota
	Pressed
)

func (s State) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Modifiers is the shift/ctrl/alt composite at the moment of an event.
type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

func (m Modifiers) String() string {
	var parts []string
	if m.Shift {
		parts = append(parts, "shift")
	}
	if m.Ctrl {
		parts = append(parts, "ctrl")
	}
	if m.Alt {
		parts = append(parts, "alt")
	}
	return strings.Join(parts, "+")
}

// Event is one observed edge of one code.
type Event struct {
	Code  keycode.Code
	State State
	Modifiers
	Time time.Time
}

func (e Event) String() string {
	s := fmt.Sprintf("%v %s", e.Code, e.State)
	if mods := e.Modifiers.String(); mods != "" {
		s += " [" + mods + "]"
	}
	return s
}

// Listener receives events synchronously on the sampler goroutine.
type Listener interface {
	KeyPressed(Event)
	KeyReleased(Event)
}

// ListenerFuncs is a Listener built from optional callbacks.
type ListenerFuncs struct {
	OnPress   func(Event)
	OnRelease func(Event)
}

func (l ListenerFuncs) KeyPressed(e Event) {
	if l.OnPress != nil {
		l.OnPress(e)
	}
}

func (l ListenerFuncs) KeyReleased(e Event) {
	if l.OnRelease != nil {
		l.OnRelease(e)
	}
}

// HandlerFunc receives both directions through one function.
type HandlerFunc func(Event)

func (f HandlerFunc) KeyPressed(e Event)  { f(e) }
func (f HandlerFunc) KeyReleased(e Event) { f(e) }
