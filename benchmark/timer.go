// Package benchmark measures the running time of algorithms.
//
// A Timer runs three user-supplied functions per repetition: an optional Pre
// step that prepares the input, the measured Run step, and an optional Post
// step that checks or cleans up. The clock only runs around Run.
package benchmark

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned for a non-positive repetition count or a
// Timer without a Run function.
var ErrInvalidArgument = errors.New("invalid argument")

// Timer times Run over repeated invocations. The zero value is not usable;
// Run must be set.
type Timer[T any] struct {
	// Description names the measured operation in log messages.
	Description string

	// Pre, if set, is applied to each supplied value before Run. Its result
	// is what Run receives. Not timed.
	Pre func(T) T

	// Run is the measured function.
	Run func(T)

	// Post, if set, receives the value after Run. Not timed, and skipped
	// during warmup.
	Post func(T)

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time

	// Logger receives a message at the start of every measurement. Nil
	// disables logging.
	Logger *logging.Logger
}

// WarmupRuns returns the number of untimed repetitions run before m timed
// ones: m/10, but at least 2 and at most 10.
func WarmupRuns(m int) int {
	return max(2, min(10, m/10))
}

// RunFromSupplier warms up with WarmupRuns(m) untimed repetitions, then
// returns the mean duration of Run over m timed repetitions. Each repetition
// draws a fresh value from supplier.
func (t *Timer[T]) RunFromSupplier(supplier func() T, m int) (time.Duration, error) {
	if t.Run == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "timer has no run function")
	}
	if supplier == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "nil supplier")
	}
	if m < 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "repetitions must be positive, got %d", m)
	}

	if t.Logger != nil {
		t.Logger.Infof("begin run: %s with %s runs", t.Description, humanize.Comma(int64(m)))
	}

	Repeat(WarmupRuns(m), t.now, supplier, t.Pre, t.Run, nil)
	total := Repeat(m, t.now, supplier, t.Pre, t.Run, t.Post)
	return total / time.Duration(m), nil
}

// RunWith is RunFromSupplier with a supplier that always returns value.
func (t *Timer[T]) RunWith(value T, m int) (time.Duration, error) {
	return t.RunFromSupplier(func() T { return value }, m)
}

func (t *Timer[T]) now() time.Time {
	if t.Clock != nil {
		return t.Clock()
	}
	return time.Now()
}

// Repeat runs n repetitions of supplier → pre → run → post and returns the
// total time spent in run, as measured by now. pre and post may be nil.
func Repeat[T any](n int, now func() time.Time, supplier func() T, pre func(T) T, run func(T), post func(T)) time.Duration {
	var total time.Duration
	for i := 0; i < n; i++ {
		v := supplier()
		if pre != nil {
			v = pre(v)
		}
		start := now()
		run(v)
		total += now().Sub(start)
		if post != nil {
			post(v)
		}
	}
	return total
}

// Millis expresses d as fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
