// Package engine turns polled key state into press/release events.
//
// One sampler goroutine per run queries every registered code, diffs the
// result against the set of codes it believes pressed and dispatches each
// edge to callback listeners and streams.
package engine

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"keypoll/keycode"
	"keypoll/log"
	"keypoll/source"
)

type Engine struct {
	src          source.Source
	interval     time.Duration
	baseline     Baseline
	now          func() time.Time
	onQueryError func(*source.QueryError)
	initial      []keycode.Code

	regMu      sync.Mutex
	registered atomic.Pointer[codeSet]
	pressed    atomic.Pointer[codeSet]

	bus    bus
	nextID atomic.Uint64

	mu  sync.Mutex
	cur *run
}

// run is one Start..Stop span of the sampler.
type run struct {
	cancel  context.CancelCauseFunc
	done    chan struct{}
	err     error
	streams []*Stream
}

func New(src source.Source, opts ...Option) (*Engine, error) {
	if src == nil {
		return nil, ErrNoSource
	}
	e := &Engine{
		src:      src,
		interval: DefaultInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.interval < 0 {
		return nil, &ConfigError{Op: "interval", Err: ErrInvalidInterval}
	}
	if e.baseline > BaselineReportHeld {
		return nil, &ConfigError{Op: "baseline", Err: ErrInvalidBaseline}
	}
	e.registered.Store(emptySet)
	e.pressed.Store(emptySet)
	if len(e.initial) > 0 {
		if err := e.RegisterKeys(e.initial...); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// RegisterKeys adds codes to the watched set. Codes already registered are
// left alone. On error nothing is registered.
func (e *Engine) RegisterKeys(codes ...keycode.Code) error {
	if err := validateCodes("register", codes); err != nil {
		return err
	}
	e.regMu.Lock()
	defer e.regMu.Unlock()
	e.registered.Store(e.registered.Load().with(codes...))
	return nil
}

// UnregisterKeys removes codes. A removed code that was pressed gets a
// Released event on the next tick.
func (e *Engine) UnregisterKeys(codes ...keycode.Code) error {
	if err := validateCodes("unregister", codes); err != nil {
		return err
	}
	e.regMu.Lock()
	defer e.regMu.Unlock()
	e.registered.Store(e.registered.Load().without(codes...))
	return nil
}

// RegisterNames registers codes by symbolic name or numeric text.
func (e *Engine) RegisterNames(names ...string) error {
	if len(names) == 0 {
		return &ConfigError{Op: "register", Err: ErrNoCodes}
	}
	codes := make([]keycode.Code, 0, len(names))
	for _, n := range names {
		c, err := keycode.Parse(n)
		if err != nil {
			return &ConfigError{Op: "register", Name: n, Err: err}
		}
		codes = append(codes, c)
	}
	return e.RegisterKeys(codes...)
}

func (e *Engine) RegisterAllKnownKeys() {
	e.regMu.Lock()
	defer e.regMu.Unlock()
	e.registered.Store(e.registered.Load().with(keycode.All()...))
}

// Registered returns the watched codes in ascending order.
func (e *Engine) Registered() []keycode.Code {
	return e.registered.Load().list()
}

// AddListener appends l to the callback list. Listeners survive restarts.
func (e *Engine) AddListener(l Listener) ListenerID {
	id := ListenerID(e.nextID.Add(1))
	e.bus.add(&listenerSink{id: id, l: l, seen: make(balance)})
	return id
}

func (e *Engine) RemoveListener(id ListenerID) bool {
	return e.bus.remove(func(s sink) bool {
		ls, ok := s.(*listenerSink)
		return ok && ls.id == id
	})
}

// IsPressed reports whether every given code is currently pressed. With no
// codes it is vacuously true.
func (e *Engine) IsPressed(codes ...keycode.Code) bool {
	snap := e.pressed.Load()
	for _, c := range codes {
		if !snap.has(c) {
			return false
		}
	}
	return true
}

// Pressed returns the codes currently pressed in ascending order.
func (e *Engine) Pressed() []keycode.Code {
	return e.pressed.Load().list()
}

func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cur != nil
}

// Start launches the sampler. Cancelling ctx ends the run with
// ErrSamplingInterrupted.
func (e *Engine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cur != nil {
		return ErrAlreadyRunning
	}
	e.startLocked(ctx)
	return nil
}

func (e *Engine) startLocked(parent context.Context) *run {
	ctx, cancel := context.WithCancelCause(parent)
	r := &run{cancel: cancel, done: make(chan struct{})}
	e.cur = r
	go e.loop(ctx, r)
	return r
}

func (e *Engine) loop(ctx context.Context, r *run) {
	log.SamplerStart(e.interval, e.registered.Load().len(), e.baseline.String())

	err := newSampler(e).run(ctx)
	e.pressed.Store(emptySet)

	e.mu.Lock()
	r.err = err
	e.cur = nil
	for _, s := range r.streams {
		s.finish(err)
		e.bus.remove(func(k sink) bool { return k == s })
	}
	r.streams = nil
	e.mu.Unlock()

	r.cancel(nil)
	log.SamplerStop(err)
	close(r.done)
}

// Stop ends the current run and waits for the sampler to exit. Codes still
// pressed are released first. No event is delivered after it returns. It must not be called from a listener.
func (e *Engine) Stop() {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil {
		return
	}
	r.cancel(errStopRequested)
	<-r.done
}

// Wait blocks until the current run ends and returns its error. It returns
// nil at once when the engine is idle.
func (e *Engine) Wait() error {
	e.mu.Lock()
	r := e.cur
	e.mu.Unlock()
	if r == nil {
		return nil
	}
	<-r.done
	return r.err
}

// Subscribe returns a stream of the transitions of codes, or of every
// registered code when none are given. The codes are registered. The
// sampler is started with a background context if it is idle; the stream
// ends when ctx is done, Close is called or the run ends.
func (e *Engine) Subscribe(ctx context.Context, codes ...keycode.Code) (*Stream, error) {
	filter := emptySet
	if len(codes) > 0 {
		if err := e.RegisterKeys(codes...); err != nil {
			return nil, err
		}
		filter = emptySet.with(codes...)
	}

	e.mu.Lock()
	r := e.cur
	if r == nil {
		r = e.startLocked(context.Background())
	}
	s := newStream(e, filter)
	r.streams = append(r.streams, s)
	e.bus.add(s)
	e.mu.Unlock()

	s.watch(ctx)
	return s, nil
}

func (e *Engine) detach(s *Stream) {
	e.bus.remove(func(k sink) bool { return k == s })
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cur != nil {
		e.cur.streams = slices.DeleteFunc(e.cur.streams, func(k *Stream) bool { return k == s })
	}
}
