package hotkey

import (
	"context"
	"errors"
	"sync"

	"keypoll/engine"
)

var ErrRegistered = errors.New("hotkey already registered")

type polledHotkey struct {
	e       *engine.Engine
	combo   Combo
	keydown chan struct{}
	keyup   chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New returns a hotkey that watches combo through e. Registering starts the
// engine if it is idle.
func New(e *engine.Engine, combo Combo) Hotkey {
	return &polledHotkey{
		e:       e,
		combo:   combo,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}
}

func (h *polledHotkey) Register() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancel != nil {
		return ErrRegistered
	}

	ctx, cancel := context.WithCancel(context.Background())
	s, err := h.e.Subscribe(ctx, h.combo.Codes()...)
	if err != nil {
		cancel()
		return err
	}
	h.cancel = cancel
	h.done = make(chan struct{})
	go h.watch(s, h.done)
	return nil
}

func (h *polledHotkey) watch(s *engine.Stream, done chan struct{}) {
	defer close(done)
	var held bool
	for ev := range s.Events() {
		if ev.Code != h.combo.Key {
			continue
		}
		if ev.State == engine.Pressed && !held && h.combo.Matches(ev.Modifiers) {
			held = true
			select {
			case h.keydown <- struct{}{}:
			default:
			}
		} else if ev.State == engine.Released && held {
			held = false
			select {
			case h.keyup <- struct{}{}:
			default:
			}
		}
	}
}

// Unregister stops watching. The combo's codes stay registered with the
// engine.
func (h *polledHotkey) Unregister() {
	h.mu.Lock()
	cancel, done := h.cancel, h.done
	h.cancel, h.done = nil, nil
	h.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (h *polledHotkey) Keydown() <-chan struct{} {
	return h.keydown
}

func (h *polledHotkey) Keyup() <-chan struct{} {
	return h.keyup
}
