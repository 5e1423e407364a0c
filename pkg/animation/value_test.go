package animation

import (
	"math"
	"testing"
	"time"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
	StepTickers()
}

func useStepClock(t *testing.T) *stepClock {
	t.Helper()
	clk := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(clk)
	t.Cleanup(func() { SetClock(prev) })
	return clk
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestValueSetImmediate(t *testing.T) {
	useStepClock(t)
	v := NewValue(0)
	defer v.Dispose()

	notified := 0
	v.AddListener(func() { notified++ })
	v.SetImmediate(25)

	if v.Value() != 25 || v.Target() != 25 {
		t.Errorf("Value/Target = %v/%v, want 25/25", v.Value(), v.Target())
	}
	if v.IsAnimating() {
		t.Error("SetImmediate should not animate")
	}
	if notified != 1 {
		t.Errorf("listener called %d times, want 1", notified)
	}
}

func TestValueAnimateToReachesTargetAtDuration(t *testing.T) {
	clk := useStepClock(t)
	v := NewValue(0)
	defer v.Dispose()

	v.AnimateTo(1, Transition{Duration: 225 * time.Millisecond, Curve: StandardEntry})
	if v.Status() != StatusForward {
		t.Errorf("Status = %v, want forward", v.Status())
	}

	clk.advance(100 * time.Millisecond)
	mid := v.Value()
	if mid <= 0 || mid >= 1 {
		t.Errorf("mid-transition value = %v, want in (0, 1)", mid)
	}
	want := StandardEntry(100.0 / 225.0)
	if !approx(mid, want) {
		t.Errorf("mid-transition value = %v, want eased %v", mid, want)
	}

	clk.advance(125 * time.Millisecond)
	if v.Value() != 1 {
		t.Errorf("Value = %v, want exactly 1 at duration", v.Value())
	}
	if v.IsAnimating() || HasActiveTickers() {
		t.Error("value should be idle with no active tickers after completion")
	}
}

func TestValueAnimateReverse(t *testing.T) {
	clk := useStepClock(t)
	v := NewValue(1)
	defer v.Dispose()

	var statuses []Status
	v.AddStatusListener(func(s Status) { statuses = append(statuses, s) })

	v.AnimateTo(0, Transition{Duration: 195 * time.Millisecond, Curve: SharpExit})
	clk.advance(194 * time.Millisecond)
	if v.Value() <= 0 {
		t.Errorf("Value = %v before duration, want > 0", v.Value())
	}
	clk.advance(1 * time.Millisecond)
	if v.Value() != 0 {
		t.Errorf("Value = %v, want 0", v.Value())
	}

	if len(statuses) != 2 || statuses[0] != StatusReverse || statuses[1] != StatusIdle {
		t.Errorf("statuses = %v, want [reverse idle]", statuses)
	}
}

func TestValueSupersedeStartsFromCurrent(t *testing.T) {
	clk := useStepClock(t)
	v := NewValue(0)
	defer v.Dispose()

	v.AnimateTo(1, Transition{Duration: 200 * time.Millisecond})
	clk.advance(100 * time.Millisecond)
	if !approx(v.Value(), 0.5) {
		t.Fatalf("Value = %v, want 0.5", v.Value())
	}

	v.AnimateTo(0, Transition{Duration: 100 * time.Millisecond})
	if v.Value() != 0.5 {
		t.Errorf("superseding move must not jump, Value = %v", v.Value())
	}
	clk.advance(50 * time.Millisecond)
	if !approx(v.Value(), 0.25) {
		t.Errorf("Value = %v, want 0.25 halfway back from 0.5", v.Value())
	}
	clk.advance(50 * time.Millisecond)
	if v.Value() != 0 {
		t.Errorf("Value = %v, want 0", v.Value())
	}
}

func TestValueZeroDurationJumpsOnNextFrame(t *testing.T) {
	clk := useStepClock(t)
	v := NewValue(20)
	defer v.Dispose()

	v.AnimateTo(40, Transition{})
	if v.Value() != 20 {
		t.Errorf("Value = %v before a frame, want 20", v.Value())
	}
	clk.advance(0)
	if v.Value() != 40 {
		t.Errorf("Value = %v, want 40", v.Value())
	}
}

func TestValueSetImmediateCancelsMove(t *testing.T) {
	clk := useStepClock(t)
	v := NewValue(0)
	defer v.Dispose()

	v.AnimateTo(1, Transition{Duration: 100 * time.Millisecond})
	v.SetImmediate(0.3)
	clk.advance(200 * time.Millisecond)

	if v.Value() != 0.3 {
		t.Errorf("Value = %v, want 0.3", v.Value())
	}
}

func TestValueUnsubscribe(t *testing.T) {
	useStepClock(t)
	v := NewValue(0)
	defer v.Dispose()

	calls := 0
	unsub := v.AddListener(func() { calls++ })
	unsub()
	v.SetImmediate(1)

	if calls != 0 {
		t.Errorf("unsubscribed listener called %d times", calls)
	}
}

func TestValueDisposeStopsTicker(t *testing.T) {
	useStepClock(t)
	v := NewValue(0)
	v.AnimateTo(1, Transition{Duration: time.Second})
	v.Dispose()

	if HasActiveTickers() {
		t.Error("Dispose should stop the ticker")
	}
	if v.IsAnimating() {
		t.Error("disposed value should be idle")
	}
}

func TestValueUseAfterDispose(t *testing.T) {
	useStepClock(t)
	v := NewValue(0.5)
	calls := 0
	v.AddListener(func() { calls++ })
	v.Dispose()

	unsubscribe := v.AddListener(func() { calls++ })
	v.AddStatusListener(func(Status) { calls++ })
	unsubscribe()

	v.AnimateTo(1, Transition{Duration: time.Second})
	if HasActiveTickers() || v.IsAnimating() {
		t.Error("AnimateTo after Dispose should not start a ticker")
	}
	if v.Value() != 0.5 {
		t.Errorf("Value = %v, want 0.5", v.Value())
	}
	if calls != 0 {
		t.Errorf("listener calls = %d, want 0", calls)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusIdle:    "idle",
		StatusForward: "forward",
		StatusReverse: "reverse",
		Status(7):     "Status(7)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
