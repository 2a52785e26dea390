package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"keypoll/keycode"
	"keypoll/log"
	"keypoll/source"
)

// sampler is the state of one run. Everything here is owned by the run
// goroutine; the only thing it shares is the published pressed snapshot.
type sampler struct {
	e          *Engine
	pressed    map[keycode.Code]struct{}
	suppressed map[keycode.Code]struct{}
	failing    map[keycode.Code]struct{}
}

func newSampler(e *Engine) *sampler {
	return &sampler{
		e:          e,
		pressed:    make(map[keycode.Code]struct{}),
		suppressed: make(map[keycode.Code]struct{}),
		failing:    make(map[keycode.Code]struct{}),
	}
}

// run drives ticks until ctx is done. It returns nil when Stop ended the
// run and ErrSamplingInterrupted otherwise. Codes still pressed at the end
// are released so every sink leaves the run balanced.
func (s *sampler) run(ctx context.Context) error {
	s.e.bus.reset()
	s.baseline()
	defer s.releaseAll(ctx.Done())

	var timer *time.Timer
	if s.e.interval > 0 {
		timer = time.NewTimer(s.e.interval)
		defer timer.Stop()
	}
	for s.wait(ctx, timer) {
		s.tick(ctx.Done())
	}
	return interrupted(ctx)
}

// wait blocks for the next tick. It returns false once ctx is done, even
// when the timer fired at the same moment.
func (s *sampler) wait(ctx context.Context, timer *time.Timer) bool {
	if timer != nil {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			timer.Reset(s.e.interval)
		}
	}
	return ctx.Err() == nil
}

// releaseAll emits Released for every code still pressed, in ascending
// order. Sinks that never saw the Pressed are skipped by the bus.
func (s *sampler) releaseAll(stop <-chan struct{}) {
	for _, c := range sortedKeys(s.pressed) {
		delete(s.pressed, c)
		s.emit(stop, c, Released)
	}
	clear(s.suppressed)
}

func interrupted(ctx context.Context) error {
	cause := context.Cause(ctx)
	if errors.Is(cause, errStopRequested) {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSamplingInterrupted, cause)
}

// baseline is the pass before the first tick. What it records depends on
// the engine's Baseline policy.
func (s *sampler) baseline() {
	if s.e.baseline == BaselineReportHeld {
		return
	}
	for _, c := range s.e.registered.Load().list() {
		held, ok := s.query(c)
		if !ok || !held {
			continue
		}
		switch s.e.baseline {
		case BaselinePrimeHeld:
			s.pressed[c] = struct{}{}
		default:
			s.suppressed[c] = struct{}{}
		}
	}
	s.publish()
}

// tick diffs one sample of every registered code against the pressed set.
// Codes are visited in ascending order; stop is checked between codes.
func (s *sampler) tick(stop <-chan struct{}) {
	reg := s.e.registered.Load()

	for _, c := range sortedKeys(s.pressed) {
		if !reg.has(c) {
			delete(s.pressed, c)
			s.emit(stop, c, Released)
		}
	}
	for c := range s.suppressed {
		if !reg.has(c) {
			delete(s.suppressed, c)
		}
	}

	for _, c := range reg.list() {
		select {
		case <-stop:
			return
		default:
		}

		now, ok := s.query(c)
		if !ok {
			continue
		}
		if _, held := s.suppressed[c]; held {
			if !now {
				delete(s.suppressed, c)
			}
			continue
		}
		_, was := s.pressed[c]
		switch {
		case was && !now:
			delete(s.pressed, c)
			s.emit(stop, c, Released)
		case !was && now:
			s.pressed[c] = struct{}{}
			s.emit(stop, c, Pressed)
		}
	}
}

// query samples one code. ok is false when the source failed, in which
// case the code keeps its previous state.
func (s *sampler) query(c keycode.Code) (pressed, ok bool) {
	raw, err := s.e.src.Query(c)
	if err != nil {
		qe := &source.QueryError{Code: c, Err: err}
		if _, streak := s.failing[c]; !streak {
			s.failing[c] = struct{}{}
			log.QueryFailure(uint16(c), c.String(), err)
		}
		if s.e.onQueryError != nil {
			s.e.onQueryError(qe)
		}
		return false, false
	}
	if _, streak := s.failing[c]; streak {
		delete(s.failing, c)
		log.QueryRecovered(uint16(c), c.String())
	}
	return source.IsPressed(raw), true
}

func (s *sampler) emit(stop <-chan struct{}, c keycode.Code, state State) {
	s.publish()
	ev := Event{
		Code:  c,
		State: state,
		Modifiers: composeModifiers(func(k keycode.Code) bool {
			_, ok := s.pressed[k]
			return ok
		}),
		Time: s.e.now(),
	}
	log.Transition(ev.Time, uint16(c), c.String(), state.String(), ev.Modifiers.String())
	s.e.bus.dispatch(stop, ev)
}

func (s *sampler) publish() {
	s.e.pressed.Store(newCodeSet(s.pressed))
}

func sortedKeys(m map[keycode.Code]struct{}) []keycode.Code {
	return newCodeSet(m).list()
}
