package benchmark

import (
	"testing"
	"time"

	"github.com/pkg/errors"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func TestWarmupRuns(t *testing.T) {
	testCases := []struct {
		m, expected int
	}{
		{1, 2},
		{10, 2},
		{20, 2},
		{30, 3},
		{99, 9},
		{100, 10},
		{1000, 10},
	}
	for _, tc := range testCases {
		if got := WarmupRuns(tc.m); got != tc.expected {
			t.Errorf("WarmupRuns(%d) = %d; expected = %d", tc.m, got, tc.expected)
		}
	}
}

func TestTimer_RunFromSupplier(t *testing.T) {
	clock := &fakeClock{step: time.Millisecond}

	var supplied, pre, run, post int
	timer := Timer[int]{
		Description: "counting",
		Pre: func(v int) int {
			pre++
			return v * 10
		},
		Run: func(v int) {
			run++
			if v != supplied*10 {
				t.Errorf("run received %d, expected pre-processed %d", v, supplied*10)
			}
		},
		Post:  func(int) { post++ },
		Clock: clock.Now,
	}

	const m = 30
	mean, err := timer.RunFromSupplier(func() int {
		supplied++
		return supplied
	}, m)
	if err != nil {
		t.Fatalf("RunFromSupplier failed: %v", err)
	}

	// Each run is bracketed by two clock readings one step apart.
	if mean != time.Millisecond {
		t.Errorf("mean = %v; expected 1ms", mean)
	}

	warmup := WarmupRuns(m)
	if supplied != warmup+m || pre != warmup+m || run != warmup+m {
		t.Errorf("supplier/pre/run called %d/%d/%d times; expected %d each", supplied, pre, run, warmup+m)
	}
	if post != m {
		t.Errorf("post called %d times; expected %d (skipped during warmup)", post, m)
	}
}

func TestTimer_RunWith(t *testing.T) {
	clock := &fakeClock{step: 2 * time.Microsecond}

	var seen []string
	timer := Timer[string]{
		Run:   func(s string) { seen = append(seen, s) },
		Clock: clock.Now,
	}

	mean, err := timer.RunWith("x", 5)
	if err != nil {
		t.Fatalf("RunWith failed: %v", err)
	}
	if mean != 2*time.Microsecond {
		t.Errorf("mean = %v; expected 2µs", mean)
	}
	if len(seen) != WarmupRuns(5)+5 {
		t.Errorf("run called %d times; expected %d", len(seen), WarmupRuns(5)+5)
	}
	for _, s := range seen {
		if s != "x" {
			t.Errorf("run received %q; expected %q", s, "x")
		}
	}
}

func TestTimer_DefaultClock(t *testing.T) {
	timer := Timer[int]{Run: func(int) { time.Sleep(time.Millisecond) }}

	mean, err := timer.RunWith(0, 3)
	if err != nil {
		t.Fatalf("RunWith failed: %v", err)
	}
	if mean < time.Millisecond {
		t.Errorf("mean = %v; expected at least 1ms", mean)
	}
}

func TestTimer_InvalidArguments(t *testing.T) {
	ok := Timer[int]{Run: func(int) {}}
	supplier := func() int { return 0 }

	testCases := []struct {
		name  string
		timer Timer[int]
		fn    func() int
		m     int
	}{
		{"zero repetitions", ok, supplier, 0},
		{"negative repetitions", ok, supplier, -5},
		{"no run function", Timer[int]{}, supplier, 10},
		{"no supplier", ok, nil, 10},
	}
	for _, tc := range testCases {
		_, err := tc.timer.RunFromSupplier(tc.fn, tc.m)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: expected ErrInvalidArgument, got %v", tc.name, err)
		}
	}
}

func TestRepeat(t *testing.T) {
	clock := &fakeClock{step: time.Second}

	var order []string
	total := Repeat(3, clock.Now,
		func() int { order = append(order, "supply"); return 1 },
		nil,
		func(int) { order = append(order, "run") },
		func(int) { order = append(order, "post") },
	)

	if total != 3*time.Second {
		t.Errorf("total = %v; expected 3s", total)
	}
	if len(order) != 9 || order[0] != "supply" || order[1] != "run" || order[2] != "post" {
		t.Errorf("unexpected call order %v", order)
	}
}

func TestMillis(t *testing.T) {
	if got := Millis(1500 * time.Microsecond); got != 1.5 {
		t.Errorf("Millis(1.5ms) = %v; expected 1.5", got)
	}
}
