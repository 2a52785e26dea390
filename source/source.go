// Package source answers "is this code held right now" against the
// operating system.
package source

import (
	"errors"
	"fmt"
	"io"

	"keypoll/keycode"
)

// PressedMask is the bit of a raw state word that is set while a code is
// held, matching GetAsyncKeyState.
const PressedMask uint16 = 0x8000

var (
	ErrUnsupported = errors.New("no key state source for this platform")
	ErrUnmapped    = errors.New("code has no mapping on this platform")
)

// Source is a synchronous raw key state query.
type Source interface {
	Query(code keycode.Code) (uint16, error)
}

// Closer is a Source holding OS resources.
type Closer interface {
	Source
	io.Closer
}

// Func adapts a plain function to Source.
type Func func(code keycode.Code) (uint16, error)

func (f Func) Query(code keycode.Code) (uint16, error) { return f(code) }

// IsPressed tests the high bit of a raw state word.
func IsPressed(raw uint16) bool {
	return raw&PressedMask == PressedMask
}

// QueryError reports that the state of one code could not be read.
type QueryError struct {
	Code keycode.Code
	Err  error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %v: %v", e.Code, e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
