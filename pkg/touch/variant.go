// Package touch provides a pressable surface with platform-appropriate tap
// feedback.
//
// [Touchable] picks its [Variant] once, when its state is created: a
// borderless ripple on Android Lollipop and later, an opacity dip
// everywhere else. Both variants sit behind the same [Feedback] interface,
// so building never branches on the platform again.
package touch

import (
	"fmt"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/platform"
)

// Variant is a tap feedback strategy.
type Variant int

const (
	// Opacity dims the surface while pressed.
	Opacity Variant = iota
	// Ripple spreads an ink circle from the press point.
	Ripple
)

// String returns a human-readable representation of the variant.
func (v Variant) String() string {
	switch v {
	case Opacity:
		return "opacity"
	case Ripple:
		return "ripple"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Node kinds of the pressable surface, one per variant.
const (
	KindOpacitySurface core.Kind = "OpacitySurface"
	KindRippleSurface  core.Kind = "RippleSurface"
)

// SelectVariant returns the feedback variant for a platform.
func SelectVariant(id platform.Identity) Variant {
	if id.SupportsRipple() {
		return Ripple
	}
	return Opacity
}

// Feedback draws press feedback on a surface node.
type Feedback interface {
	// Variant reports which strategy this is.
	Variant() Variant
	// PressDown starts feedback for a press at a point inside bounds.
	PressDown(at graphics.Offset, bounds graphics.Rect)
	// PressUp ends feedback after a completed press.
	PressUp()
	// PressCancel ends feedback for a press that did not complete.
	PressCancel()
	// Decorate applies the current feedback frame to the surface node.
	Decorate(surface *core.Node)
	// Dispose releases the feedback's animations.
	Dispose()
	core.Listenable
}

// NewFeedback creates the feedback strategy for a variant.
func NewFeedback(v Variant) Feedback {
	if v == Ripple {
		return newRippleFeedback()
	}
	return newOpacityFeedback()
}

// VariantOf returns the feedback variant drawn by a rendered surface
// node. ok is false for nodes that are not touchable surfaces.
func VariantOf(n *core.Node) (v Variant, ok bool) {
	if n == nil {
		return Opacity, false
	}
	switch n.Kind {
	case KindRippleSurface:
		return Ripple, true
	case KindOpacitySurface:
		return Opacity, true
	}
	return Opacity, false
}
