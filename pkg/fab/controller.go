package fab

import (
	"time"

	"github.com/go-drift/fab/pkg/animation"
)

// Geometry of the button, in logical pixels.
const (
	// ButtonSize is the diameter of a fully shown button.
	ButtonSize = 56
	// BaseShift is the distance from the bottom edge with no snack offset.
	BaseShift = 20
)

// Motion durations.
const (
	EntryDuration = 225 * time.Millisecond
	ExitDuration  = 195 * time.Millisecond
)

// Transitions for the two axes. The shift axis uses the entry timing when
// moving to a nonzero offset and the exit timing when returning to the
// baseline, regardless of direction.
var (
	PresenceEntry = animation.Transition{Duration: EntryDuration, Curve: animation.StandardEntry}
	PresenceExit  = animation.Transition{Duration: ExitDuration, Curve: animation.SharpExit}
	ShiftEntry    = animation.Transition{Duration: EntryDuration, Curve: animation.StandardEntry}
	ShiftExit     = animation.Transition{Duration: ExitDuration, Curve: animation.AccelerateExit}
)

// Controller drives the two animated values of a button.
//
// Presence runs from 0 (hidden) to 1 (shown) and determines size,
// rotation and horizontal scale. Shift is the distance in pixels between
// the button container and the bottom edge. The two axes animate
// independently; a new move on one axis replaces the move in flight on
// that axis and continues from its current value.
//
// Derived outputs are linear in the values. Easing is applied to time by
// the value transitions.
type Controller struct {
	presence *animation.Value
	shift    *animation.Value

	size     *animation.Tween[float64]
	rotation *animation.Tween[float64]
}

// NewController creates a controller already at rest for the given inputs.
// Nothing animates until SetVisible or SetOffset is called.
func NewController(visible bool, snackOffset float64) *Controller {
	c := &Controller{
		presence: animation.NewValue(0),
		shift:    animation.NewValue(BaseShift),
		size:     animation.TweenFloat64(0, ButtonSize),
		rotation: animation.TweenFloat64(-90, 0),
	}
	c.presence.SetImmediate(presenceTarget(visible))
	c.shift.SetImmediate(shiftTarget(snackOffset))
	return c
}

// SetVisible starts the presence transition toward shown or hidden.
func (c *Controller) SetVisible(visible bool) {
	if visible {
		c.presence.AnimateTo(1, PresenceEntry)
	} else {
		c.presence.AnimateTo(0, PresenceExit)
	}
}

// SetOffset starts the shift transition toward BaseShift + snackOffset.
// Negative offsets are not rejected.
func (c *Controller) SetOffset(snackOffset float64) {
	if snackOffset == 0 {
		c.shift.AnimateTo(BaseShift, ShiftExit)
	} else {
		c.shift.AnimateTo(shiftTarget(snackOffset), ShiftEntry)
	}
}

func presenceTarget(visible bool) float64 {
	if visible {
		return 1
	}
	return 0
}

func shiftTarget(snackOffset float64) float64 {
	return BaseShift + snackOffset
}

// Presence returns the presence value.
func (c *Controller) Presence() *animation.Value {
	return c.presence
}

// Shift returns the shift value.
func (c *Controller) Shift() *animation.Value {
	return c.shift
}

// Size returns the current button diameter: 0 hidden, ButtonSize shown.
func (c *Controller) Size() float64 {
	return c.size.Transform(c.presence)
}

// Rotation returns the current icon rotation in degrees: -90 hidden, 0
// shown.
func (c *Controller) Rotation() float64 {
	return c.rotation.Transform(c.presence)
}

// ScaleX returns the current horizontal icon scale, equal to presence.
func (c *Controller) ScaleX() float64 {
	return c.presence.Value()
}

// BottomOffset returns the current distance from the bottom edge.
func (c *Controller) BottomOffset() float64 {
	return c.shift.Value()
}

// IsAnimating reports whether either axis is moving.
func (c *Controller) IsAnimating() bool {
	return c.presence.IsAnimating() || c.shift.IsAnimating()
}

// AddListener adds a callback fired on every change of either axis.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	unsubPresence := c.presence.AddListener(fn)
	unsubShift := c.shift.AddListener(fn)
	return func() {
		unsubPresence()
		unsubShift()
	}
}

// Dispose stops both axes.
func (c *Controller) Dispose() {
	c.presence.Dispose()
	c.shift.Dispose()
}
