package touch

import (
	"time"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
)

// Host-default opacity feedback timings.
const (
	// ActiveOpacity is the surface opacity while pressed.
	ActiveOpacity = 0.2

	opacityPressDuration   = 150 * time.Millisecond
	opacityReleaseDuration = 250 * time.Millisecond
)

var opacityCurve = animation.CubicBezier(0.455, 0.03, 0.515, 0.955)

type opacityFeedback struct {
	opacity *animation.Value
}

func newOpacityFeedback() *opacityFeedback {
	return &opacityFeedback{opacity: animation.NewValue(1)}
}

func (f *opacityFeedback) Variant() Variant { return Opacity }

func (f *opacityFeedback) PressDown(graphics.Offset, graphics.Rect) {
	f.opacity.AnimateTo(ActiveOpacity, animation.Transition{
		Duration: opacityPressDuration,
		Curve:    opacityCurve,
	})
}

func (f *opacityFeedback) PressUp() {
	f.opacity.AnimateTo(1, animation.Transition{
		Duration: opacityReleaseDuration,
		Curve:    opacityCurve,
	})
}

func (f *opacityFeedback) PressCancel() {
	f.PressUp()
}

func (f *opacityFeedback) Decorate(surface *core.Node) {
	surface.Kind = KindOpacitySurface
	if v := f.opacity.Value(); v < 1 {
		surface.Opacity = core.Float64(v)
	}
}

func (f *opacityFeedback) AddListener(fn func()) func() {
	return f.opacity.AddListener(fn)
}

func (f *opacityFeedback) Dispose() {
	f.opacity.Dispose()
}
