package touch

import (
	"time"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
)

const (
	rippleSpreadDuration = 225 * time.Millisecond
	rippleFadeDuration   = 150 * time.Millisecond
)

// InkColor is the ripple ink at full strength: the light theme's
// control highlight.
var InkColor = graphics.ColorBlack.WithAlpha(0.12)

type rippleFeedback struct {
	radius *animation.Value
	alpha  *animation.Value
	center graphics.Offset
}

func newRippleFeedback() *rippleFeedback {
	return &rippleFeedback{
		radius: animation.NewValue(0),
		alpha:  animation.NewValue(0),
	}
}

func (f *rippleFeedback) Variant() Variant { return Ripple }

// PressDown starts a new splash centred on the press point. The splash
// grows until it reaches the farthest corner of the bounds.
func (f *rippleFeedback) PressDown(at graphics.Offset, bounds graphics.Rect) {
	f.center = graphics.Offset{X: at.X - bounds.Left, Y: at.Y - bounds.Top}
	local := graphics.RectFromLTWH(0, 0, bounds.Width(), bounds.Height())

	f.alpha.SetImmediate(1)
	f.radius.SetImmediate(0)
	f.radius.AnimateTo(local.FarthestCornerDistance(f.center), animation.Transition{
		Duration: rippleSpreadDuration,
		Curve:    animation.StandardEntry,
	})
}

func (f *rippleFeedback) PressUp() {
	f.alpha.AnimateTo(0, animation.Transition{
		Duration: rippleFadeDuration,
		Curve:    animation.Linear,
	})
}

func (f *rippleFeedback) PressCancel() {
	f.PressUp()
}

func (f *rippleFeedback) Decorate(surface *core.Node) {
	surface.Kind = KindRippleSurface
	surface.ClipToBounds = true
	if a := f.alpha.Value(); a > 0 {
		surface.Ink = &core.Ink{
			Center: f.center,
			Radius: f.radius.Value(),
			Color:  InkColor.WithAlpha(InkColor.Alpha() * a),
		}
	}
}

func (f *rippleFeedback) AddListener(fn func()) func() {
	unsubRadius := f.radius.AddListener(fn)
	unsubAlpha := f.alpha.AddListener(fn)
	return func() {
		unsubRadius()
		unsubAlpha()
	}
}

func (f *rippleFeedback) Dispose() {
	f.radius.Dispose()
	f.alpha.Dispose()
}
