package source

import (
	"sync"

	"keypoll/keycode"
)

// Fake is a scriptable Source for tests and headless runs.
type Fake struct {
	mu      sync.Mutex
	held    map[keycode.Code]bool
	scripts map[keycode.Code][]bool
	fail    map[keycode.Code]error
	queries map[keycode.Code]int
}

func NewFake() *Fake {
	return &Fake{
		held:    make(map[keycode.Code]bool),
		scripts: make(map[keycode.Code][]bool),
		fail:    make(map[keycode.Code]error),
		queries: make(map[keycode.Code]int),
	}
}

func (f *Fake) Press(codes ...keycode.Code) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range codes {
		f.held[c] = true
	}
}

func (f *Fake) Release(codes ...keycode.Code) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range codes {
		f.held[c] = false
	}
}

// Script queues samples for code, consumed one per query. Once the script
// runs out the last sample stays held.
func (f *Fake) Script(code keycode.Code, samples ...bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scripts[code] = append(f.scripts[code], samples...)
}

// Fail makes every query for code return err until Heal is called.
func (f *Fake) Fail(code keycode.Code, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[code] = err
}

func (f *Fake) Heal(code keycode.Code) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fail, code)
}

// Queries returns how many times code has been queried.
func (f *Fake) Queries(code keycode.Code) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[code]
}

func (f *Fake) Query(code keycode.Code) (uint16, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries[code]++
	if err := f.fail[code]; err != nil {
		return 0, err
	}
	if s := f.scripts[code]; len(s) > 0 {
		f.held[code] = s[0]
		f.scripts[code] = s[1:]
	}
	if f.held[code] {
		return PressedMask | 0x0001, nil
	}
	return 0, nil
}

func (f *Fake) Close() error { return nil }
