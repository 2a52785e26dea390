package engine

import (
	"errors"
	"fmt"

	"keypoll/keycode"
)

var (
	// ErrConfiguration matches every registration error.
	ErrConfiguration = errors.New("invalid key configuration")

	ErrNoCodes         = errors.New("no codes given")
	ErrInvalidCode     = errors.New("code out of range")
	ErrNoSource        = errors.New("no key state source")
	ErrInvalidInterval = errors.New("interval must not be negative")
	ErrInvalidBaseline = errors.New("unknown baseline policy")
	ErrAlreadyRunning  = errors.New("engine is already running")
	ErrStreamClosed    = errors.New("stream closed")

	// ErrSamplingInterrupted ends a sampler whose context was cancelled
	// from outside. It is terminal for that run.
	ErrSamplingInterrupted = errors.New("sampling interrupted")

	// errStopRequested is the cancel cause used by Stop.
	errStopRequested = errors.New("stop requested")
)

// ConfigError is returned synchronously by registration calls. Nothing is
// applied when it is returned.
type ConfigError struct {
	Op   string
	Code keycode.Code
	Name string
	Err  error
}

func (e *ConfigError) Error() string {
	switch {
	case e.Name != "":
		return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
	case e.Code != 0:
		return fmt.Sprintf("%s %#02x: %v", e.Op, uint16(e.Code), e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *ConfigError) Unwrap() error { return e.Err }

func (e *ConfigError) Is(target error) bool { return target == ErrConfiguration }

func validateCodes(op string, codes []keycode.Code) error {
	if len(codes) == 0 {
		return &ConfigError{Op: op, Err: ErrNoCodes}
	}
	for _, c := range codes {
		if !c.Valid() {
			return &ConfigError{Op: op, Code: c, Err: ErrInvalidCode}
		}
		if !keycode.Known(c) {
			return &ConfigError{Op: op, Code: c, Err: keycode.ErrUnknownKey}
		}
	}
	return nil
}
