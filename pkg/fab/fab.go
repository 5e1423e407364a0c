// Package fab provides an animated floating action button.
//
// The button scales and rotates in when shown, shrinks away when hidden,
// and slides up by SnackOffset to clear a transient bottom overlay. Taps
// are delivered through a [touch.Touchable], which picks ripple or opacity
// feedback for the host platform.
//
//	fab.FAB{
//	    OnClickAction: compose,
//	    ButtonColor:   "#2196f3",
//	    SnackOffset:   snackbarHeight,
//	    Hidden:        scrolling,
//	}
package fab

import (
	"fmt"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/errors"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
	"github.com/go-drift/fab/pkg/platform"
	"github.com/go-drift/fab/pkg/touch"
)

// Node keys of the rendered button.
const (
	KeyContainer = "fab.container"
	KeyButton    = "fab.button"
	KeySurface   = "fab.surface"
	KeyIcon      = "fab.icon"
)

// Defaults for the color options.
const (
	DefaultButtonColor   = touch.DefaultColor
	DefaultIconTextColor = "#ffffff"
)

// Container geometry.
const (
	containerSize  = 62
	containerInset = 17
	cornerRadius   = 50
)

// FAB is a floating action button. The zero value is a visible red
// button with a white "+" that does nothing when tapped.
type FAB struct {
	// Hidden hides the button. Changing it animates the button in or out.
	Hidden bool
	// OnClickAction is called once per tap.
	OnClickAction func()
	// ButtonColor is the CSS color of the surface. Defaults to "red".
	ButtonColor string
	// IconTextColor is the CSS color of the icon. Defaults to "#ffffff".
	IconTextColor string
	// IconTextComponent renders the icon. Defaults to DefaultIcon.
	IconTextComponent IconBuilder
	// SnackOffset raises the button by this many pixels. Changing it
	// animates the button to the new height.
	SnackOffset float64
	// Style is merged onto the pressable surface.
	Style *layout.Style
	// Platform overrides platform.Current() for feedback selection.
	Platform *platform.Identity
}

// Visible reports whether the button should be shown.
func (f FAB) Visible() bool {
	return !f.Hidden
}

func (f FAB) CreateState() core.State {
	return &fabState{}
}

type fabState struct {
	core.StateBase
	controller *Controller
	iconColor  graphics.Color
}

func (s *fabState) widget() FAB {
	return s.Element().Widget().(FAB)
}

func (s *fabState) InitState() {
	w := s.widget()
	s.controller = core.UseController(s, func() *Controller {
		return NewController(w.Visible(), w.SnackOffset)
	})
	core.UseListenable(s, s.controller)
	s.iconColor = resolveIconColor(w.IconTextColor)
}

func (s *fabState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	old := oldWidget.(FAB)
	w := s.widget()
	if w.Visible() != old.Visible() {
		s.controller.SetVisible(w.Visible())
	}
	if w.SnackOffset != old.SnackOffset {
		s.controller.SetOffset(w.SnackOffset)
	}
	if w.IconTextColor != old.IconTextColor {
		s.iconColor = resolveIconColor(w.IconTextColor)
	}
}

func (s *fabState) Build(ctx core.BuildContext) *core.Node {
	w := s.widget()
	c := s.controller

	iconBuilder := w.IconTextComponent
	if iconBuilder == nil {
		iconBuilder = DefaultIcon
	}
	iconWrapper := &core.Node{
		Kind:      core.KindView,
		Key:       KeyIcon,
		Transform: &graphics.Transform{ScaleX: c.ScaleX(), Rotation: c.Rotation()},
	}
	// A builder may return nil to draw no icon.
	if icon := iconBuilder(layout.TextStyle{FontSize: IconFontSize, Color: s.iconColor}); icon != nil {
		iconWrapper.Children = []*core.Node{icon}
	}

	surfaceStyle := layout.MergeAll(layout.Style{
		Flex:           1,
		BorderRadius:   cornerRadius,
		AlignItems:     layout.AlignCenter,
		JustifyContent: layout.AlignCenter,
	}, w.Style)

	surface := ctx.Mount(KeySurface, touch.Touchable{
		Key:      KeySurface,
		OnPress:  w.OnClickAction,
		Color:    w.ButtonColor,
		Style:    &surfaceStyle,
		Children: []*core.Node{iconWrapper},
		Platform: w.Platform,
	})

	size := c.Size()
	button := core.ViewNode(KeyButton, layout.Style{
		Width:        size,
		Height:       size,
		ExactSize:    true,
		BorderRadius: cornerRadius,
		AlignItems:   layout.AlignStretch,
		Shadow: &layout.Shadow{
			Color:   graphics.ColorBlack,
			Opacity: 0.8,
			Radius:  2,
			Offset:  graphics.Offset{Y: 1},
		},
		Elevation: 2,
	}, surface)

	return core.ViewNode(KeyContainer, layout.Style{
		Position:       layout.PositionAbsolute,
		Right:          containerInset,
		Bottom:         c.BottomOffset(),
		Width:          containerSize,
		Height:         containerSize,
		AlignItems:     layout.AlignCenter,
		JustifyContent: layout.AlignCenter,
		BorderRadius:   cornerRadius,
	}, button)
}

// ControllerOf returns the controller of a mounted FAB element, or nil if
// e is not a FAB.
func ControllerOf(e *core.Element) *Controller {
	if e == nil {
		return nil
	}
	if s, ok := e.State().(*fabState); ok {
		return s.controller
	}
	return nil
}

func resolveIconColor(color string) graphics.Color {
	if color == "" {
		color = DefaultIconTextColor
	}
	c, err := graphics.ParseColor(color)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "fab.FAB",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("icon color: %w", err),
		})
		return graphics.ColorWhite
	}
	return c
}
