// Package animation provides the time-driven values behind fab's
// transitions.
//
// A [Value] is an animated scalar with two write operations:
// SetImmediate jumps without animating, AnimateTo starts a timed move
// under a [Curve]. A new move supersedes one in flight and continues from
// the current position.
//
// Values are advanced by [Ticker]s, which the host's frame loop steps with
// [StepTickers] once per frame. Time comes from the package [Clock], which
// tests replace with a fake via [SetClock].
//
// [Tween] maps a driving value linearly onto an output range:
//
//	size := animation.TweenFloat64(0, 56)
//	s.presence = animation.NewValue(0)
//	s.presence.AddListener(func() { s.SetState(nil) })
//	s.presence.AnimateTo(1, animation.Transition{
//	    Duration: 225 * time.Millisecond,
//	    Curve:    animation.StandardEntry,
//	})
//
//	// In Build
//	width := size.Transform(s.presence)
package animation
