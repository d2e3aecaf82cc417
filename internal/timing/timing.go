// Package timing records named phase durations for a run.
package timing

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ErrNotStarted is returned by Stop for a phase that was never started.
var ErrNotStarted = errors.New("timing: phase not started")

// Kind groups phases by the work they measure.
type Kind int

const (
	Generic Kind = iota
	Compute
	Copy
	IO
)

// String returns the kind name used in logs and reports.
func (k Kind) String() string {
	switch k {
	case Generic:
		return "Generic"
	case Compute:
		return "Compute"
	case Copy:
		return "Copy"
	case IO:
		return "IO"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Record is one completed phase.
type Record struct {
	Kind     Kind          `json:"kind"`
	Message  string        `json:"message"`
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration_ns"`
}

type phase struct {
	kind Kind
	msg  string
}

// Timer tracks open phases keyed by kind and message. It is safe for
// concurrent use.
type Timer struct {
	mu      sync.Mutex
	now     func() time.Time
	logger  *zap.Logger
	open    map[phase]time.Time
	records []Record
}

// New returns a Timer that logs completed phases to logger.
// A nil logger disables logging.
func New(logger *zap.Logger) *Timer {
	return NewWithClock(logger, time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(logger *zap.Logger, now func() time.Time) *Timer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timer{
		now:    now,
		logger: logger,
		open:   make(map[phase]time.Time),
	}
}

// Start opens a phase. Starting an open phase restarts it.
func (t *Timer) Start(kind Kind, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.open[phase{kind, msg}] = t.now()
}

// Stop closes the phase opened by Start with the same kind and message and
// returns its duration.
func (t *Timer) Stop(kind Kind, msg string) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := phase{kind, msg}
	start, ok := t.open[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s %q", ErrNotStarted, kind, msg)
	}
	delete(t.open, key)

	d := t.now().Sub(start)
	t.records = append(t.records, Record{Kind: kind, Message: msg, Start: start, Duration: d})

	t.logger.Debug(msg,
		zap.Stringer("kind", kind),
		zap.Duration("elapsed", d))

	return d, nil
}

// Time runs fn inside a phase and returns fn's error.
func (t *Timer) Time(kind Kind, msg string, fn func() error) error {
	t.Start(kind, msg)
	err := fn()
	if _, stopErr := t.Stop(kind, msg); stopErr != nil {
		return errors.Join(err, stopErr)
	}
	return err
}

// Records returns completed phases in the order they stopped.
func (t *Timer) Records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
