package hotkey

import (
	"sync"
	"sync/atomic"
	"time"
)

type Mode string

const (
	// ModeHold is active while the combo is held.
	ModeHold Mode = "hold"
	// ModeLatch is active from a short tap until the next press ends.
	ModeLatch Mode = "latch"
)

// StartEvent marks the combo going active. Mode is the mode known at that
// moment; a press starts as a latch and becomes a hold once it outlasts the
// threshold.
type StartEvent struct {
	Mode Mode
}

// Hybrid classifies presses of one Hotkey as taps or holds. A hold is
// active until release. A tap latches on and the next press-release turns
// it off.
type Hybrid struct {
	startCh chan StartEvent
	stopCh  chan struct{}
	quit    chan struct{}
	done    chan struct{}
	closing sync.Once
	latched atomic.Bool
}

// NewHybrid builds a Hybrid controller on top of an existing Hotkey.
// longPress is the hold threshold.
func NewHybrid(hk Hotkey, longPress time.Duration) *Hybrid {
	h := &Hybrid{
		startCh: make(chan StartEvent, 1),
		stopCh:  make(chan struct{}, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go h.run(hk, longPress)
	return h
}

func (h *Hybrid) Start() <-chan StartEvent { return h.startCh }

// StopChan is signaled when the active period ends, for both modes.
func (h *Hybrid) StopChan() <-chan struct{} { return h.stopCh }

// IsToggle reports whether the current active period is a latch.
func (h *Hybrid) IsToggle() bool { return h.latched.Load() }

// Close stops the classifier goroutine. It is safe to call more than once.
func (h *Hybrid) Close() {
	h.closing.Do(func() { close(h.quit) })
}

// Done is closed once the classifier goroutine has exited.
func (h *Hybrid) Done() <-chan struct{} { return h.done }

type hybridState int

const (
	stIdle hybridState = iota
	stLatched
)

func (h *Hybrid) run(hk Hotkey, longPress time.Duration) {
	defer close(h.done)
	state := stIdle
	for {
		switch state {
		case stIdle:
			if !h.recv(hk.Keydown()) {
				return
			}
			h.latched.Store(true)
			select {
			case h.startCh <- StartEvent{Mode: ModeLatch}:
			case <-h.quit:
				return
			}
			timer := time.NewTimer(longPress)
			select {
			case <-timer.C:
				h.latched.Store(false)
				if !h.recv(hk.Keyup()) {
					return
				}
				h.signalStop()
			case <-hk.Keyup():
				timer.Stop()
				state = stLatched
			case <-h.quit:
				timer.Stop()
				return
			}
		case stLatched:
			if !h.recv(hk.Keydown()) || !h.recv(hk.Keyup()) {
				return
			}
			h.latched.Store(false)
			h.signalStop()
			state = stIdle
		}
	}
}

func (h *Hybrid) recv(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-h.quit:
		return false
	}
}

func (h *Hybrid) signalStop() {
	select {
	case h.stopCh <- struct{}{}:
	default:
	}
}
