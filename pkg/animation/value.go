package animation

import (
	"fmt"
	"time"
)

// Status reports what a [Value] is currently doing.
type Status int

const (
	// StatusIdle means the value is at rest.
	StatusIdle Status = iota
	// StatusForward means the value is moving toward a larger target.
	StatusForward
	// StatusReverse means the value is moving toward a smaller target.
	StatusReverse
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusForward:
		return "forward"
	case StatusReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Transition configures one timed move of a [Value].
type Transition struct {
	// Duration is the length of the move. Zero or negative jumps to the
	// target on the next frame.
	Duration time.Duration
	// Curve eases progress over time. Nil means Linear.
	Curve Curve
}

// Value is an animated scalar owned by a single widget state.
//
// The state writes it with SetImmediate (no animation) or AnimateTo (timed
// move under a curve). Starting a new move while one is in flight
// supersedes it: the new move starts from wherever the value currently is.
// There is no queueing and no cancellation handle.
//
// Value is not thread-safe. It must only be used from the UI thread;
// [StepTickers] advances it on the same thread.
//
// Always call Dispose when the owner goes away to release its ticker.
type Value struct {
	current    float64
	startValue float64
	target     float64
	transition Transition
	status     Status
	ticker     *Ticker
	disposed   bool

	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewValue creates a value resting at initial.
func NewValue(initial float64) *Value {
	return &Value{
		current:         initial,
		target:          initial,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// Value returns the current value.
func (v *Value) Value() float64 {
	return v.current
}

// Target returns the value the current (or last) move is heading to.
func (v *Value) Target() float64 {
	return v.target
}

// Transition returns the configuration of the current (or last) move.
func (v *Value) Transition() Transition {
	return v.transition
}

// Status returns the current status.
func (v *Value) Status() Status {
	return v.status
}

// IsAnimating returns true while a move is in flight.
func (v *Value) IsAnimating() bool {
	return v.status != StatusIdle
}

// SetImmediate stops any move in flight and jumps to value.
func (v *Value) SetImmediate(value float64) {
	v.stopTicker()
	v.current = value
	v.target = value
	v.startValue = value
	v.setStatus(StatusIdle)
	v.notifyListeners()
}

// AnimateTo starts a timed move from the current value to target.
// A move already in flight is replaced. After Dispose it does nothing.
func (v *Value) AnimateTo(target float64, transition Transition) {
	if v.disposed {
		return
	}
	v.stopTicker()

	v.startValue = v.current
	v.target = target
	v.transition = transition
	if target >= v.current {
		v.setStatus(StatusForward)
	} else {
		v.setStatus(StatusReverse)
	}

	v.ticker = NewTicker(v.tick)
	v.ticker.Start()
}

// Stop halts a move at the current value.
func (v *Value) Stop() {
	v.stopTicker()
	v.setStatus(StatusIdle)
}

func (v *Value) tick(elapsed time.Duration) {
	progress := 1.0
	if v.transition.Duration > 0 {
		progress = min(float64(elapsed)/float64(v.transition.Duration), 1)
	}

	if progress >= 1 {
		v.current = v.target
		v.stopTicker()
		v.notifyListeners()
		v.setStatus(StatusIdle)
		return
	}

	eased := progress
	if v.transition.Curve != nil {
		eased = v.transition.Curve(progress)
	}
	v.current = LerpFloat64(v.startValue, v.target, eased)
	v.notifyListeners()
}

func (v *Value) stopTicker() {
	if v.ticker != nil {
		v.ticker.Stop()
		v.ticker = nil
	}
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (v *Value) AddListener(fn func()) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (v *Value) AddStatusListener(fn func(Status)) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.statusListeners[id] = fn
	return func() {
		delete(v.statusListeners, id)
	}
}

func (v *Value) setStatus(status Status) {
	if v.status == status {
		return
	}
	v.status = status
	for _, listener := range v.statusListeners {
		listener(status)
	}
}

func (v *Value) notifyListeners() {
	for _, listener := range v.listeners {
		listener()
	}
}

// Dispose stops the value and drops its listeners. A disposed value
// keeps its current value and never animates again.
func (v *Value) Dispose() {
	v.stopTicker()
	v.disposed = true
	v.status = StatusIdle
	clear(v.listeners)
	clear(v.statusListeners)
}
