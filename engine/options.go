package engine

import (
	"fmt"
	"strings"
	"time"

	"keypoll/keycode"
	"keypoll/source"
)

// DefaultInterval is the delay between ticks when none is configured.
const DefaultInterval = 10 * time.Millisecond

// Baseline decides what happens to codes already held when a run starts.
type Baseline uint8

const (
	// BaselineSuppressHeld ignores a held code until it is released and
	// pressed again.
	BaselineSuppressHeld Baseline = iota
	// BaselinePrimeHeld marks held codes pressed without an event.
	BaselinePrimeHeld
	// BaselineReportHeld reports held codes as Pressed on the first tick.
	BaselineReportHeld
)

var baselineNames = [...]string{
	BaselineSuppressHeld: "suppress",
	BaselinePrimeHeld:    "prime",
	BaselineReportHeld:   "report",
}

func (b Baseline) String() string {
	if int(b) < len(baselineNames) {
		return baselineNames[b]
	}
	return fmt.Sprintf("Baseline(%d)", uint8(b))
}

// ParseBaseline accepts "suppress", "prime" or "report".
func ParseBaseline(text string) (Baseline, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for i, name := range baselineNames {
		if t == name {
			return Baseline(i), nil
		}
	}
	return 0, fmt.Errorf("unknown baseline %q (want suppress, prime or report)", text)
}

type Option func(*Engine)

// WithInterval sets the delay between ticks. Zero busy-polls.
func WithInterval(d time.Duration) Option {
	return func(e *Engine) { e.interval = d }
}

func WithBaseline(b Baseline) Option {
	return func(e *Engine) { e.baseline = b }
}

// WithKeys registers codes at construction.
func WithKeys(codes ...keycode.Code) Option {
	return func(e *Engine) { e.initial = append(e.initial, codes...) }
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithQueryErrorHandler is called on the sampler goroutine for every failed
// query, in addition to the once-per-streak diagnostics log entry.
func WithQueryErrorHandler(fn func(*source.QueryError)) Option {
	return func(e *Engine) { e.onQueryError = fn }
}
