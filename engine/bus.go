package engine

import (
	"runtime/debug"
	"slices"
	"sync"
	"sync/atomic"

	"keypoll/keycode"
	"keypoll/log"
)

// ListenerID identifies a registered Listener for removal.
type ListenerID uint64

// sink is one consumer on the bus: a callback listener or a stream.
type sink interface {
	wants(code keycode.Code) bool
	deliver(stop <-chan struct{}, ev Event)
	pairs() balance
}

// balance keeps one sink's press/release pairing: a sink never gets a
// Released for a code whose Pressed it did not get. Only the sampler
// goroutine touches it.
type balance map[keycode.Code]struct{}

func (b balance) admit(ev Event) bool {
	if ev.State == Pressed {
		b[ev.Code] = struct{}{}
		return true
	}
	if _, ok := b[ev.Code]; !ok {
		return false
	}
	delete(b, ev.Code)
	return true
}

func (b balance) reset() { clear(b) }

// bus fans events out to sinks in registration order. The sink slice is
// copy-on-write so dispatch never holds the lock.
type bus struct {
	mu    sync.Mutex
	sinks atomic.Pointer[[]sink]
}

func (b *bus) load() []sink {
	if p := b.sinks.Load(); p != nil {
		return *p
	}
	return nil
}

func (b *bus) add(s sink) {
	b.mu.Lock()
	defer b.mu.Unlock()
	next := append(slices.Clone(b.load()), s)
	b.sinks.Store(&next)
}

func (b *bus) remove(match func(sink) bool) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.load()
	next := slices.DeleteFunc(slices.Clone(cur), match)
	if len(next) == len(cur) {
		return false
	}
	b.sinks.Store(&next)
	return true
}

// reset clears every sink's pairing state at the start of a sampler run.
func (b *bus) reset() {
	for _, s := range b.load() {
		s.pairs().reset()
	}
}

func (b *bus) dispatch(stop <-chan struct{}, ev Event) {
	for _, s := range b.load() {
		if !s.wants(ev.Code) || !s.pairs().admit(ev) {
			continue
		}
		s.deliver(stop, ev)
	}
}

type listenerSink struct {
	id   ListenerID
	l    Listener
	seen balance
}

func (s *listenerSink) wants(keycode.Code) bool { return true }

func (s *listenerSink) pairs() balance { return s.seen }

func (s *listenerSink) deliver(_ <-chan struct{}, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			log.ListenerPanic(uint64(s.id), r, debug.Stack())
		}
	}()
	if ev.State == Pressed {
		s.l.KeyPressed(ev)
	} else {
		s.l.KeyReleased(ev)
	}
}
