package engine

import (
	"context"
	"sync"

	"keypoll/keycode"
)

// Stream is a cold push subscription. It sees only edges that happen
// after Subscribe returns, filtered to its codes. Events is closed when the
// stream ends; Err then tells why.
type Stream struct {
	e      *Engine
	filter *codeSet
	ch     chan Event
	done   chan struct{}
	seen   balance

	sendMu sync.Mutex
	closed bool

	ctxMu     sync.Mutex
	stopAfter func() bool

	once sync.Once
	err  error
}

func newStream(e *Engine, filter *codeSet) *Stream {
	return &Stream{
		e:      e,
		filter: filter,
		ch:     make(chan Event),
		done:   make(chan struct{}),
		seen:   make(balance),
	}
}

// Events delivers transitions. The sampler blocks until each one is
// received, so a slow reader slows every tick.
func (s *Stream) Events() <-chan Event { return s.ch }

// Done is closed when the stream ends.
func (s *Stream) Done() <-chan struct{} { return s.done }

// Err returns nil while the stream is live or after a clean end, and
// ErrSamplingInterrupted (joined with the cause) when the sampler was
// interrupted.
func (s *Stream) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// Next blocks for the next event. Once the stream has ended it returns
// ErrStreamClosed, or the terminal error when the run was interrupted.
func (s *Stream) Next(ctx context.Context) (Event, error) {
	select {
	case ev, ok := <-s.ch:
		if ok {
			return ev, nil
		}
		if err := s.Err(); err != nil {
			return Event{}, err
		}
		return Event{}, ErrStreamClosed
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Close ends the stream and detaches it from the engine. Safe to call more
// than once and from any goroutine.
func (s *Stream) Close() {
	s.finish(nil)
	s.e.detach(s)
}

func (s *Stream) watch(ctx context.Context) {
	s.ctxMu.Lock()
	defer s.ctxMu.Unlock()
	select {
	case <-s.done:
		return
	default:
	}
	s.stopAfter = context.AfterFunc(ctx, s.Close)
}

func (s *Stream) wants(code keycode.Code) bool {
	return s.filter.len() == 0 || s.filter.has(code)
}

func (s *Stream) pairs() balance { return s.seen }

func (s *Stream) deliver(stop <-chan struct{}, ev Event) {
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	case <-s.done:
	case <-stop:
	}
}

func (s *Stream) finish(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)

		s.sendMu.Lock()
		s.closed = true
		close(s.ch)
		s.sendMu.Unlock()

		s.ctxMu.Lock()
		stop := s.stopAfter
		s.ctxMu.Unlock()
		if stop != nil {
			stop()
		}
	})
}
