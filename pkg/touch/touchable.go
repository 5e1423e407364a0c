package touch

import (
	"fmt"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/errors"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
	"github.com/go-drift/fab/pkg/platform"
)

// DefaultColor is the surface fill used when Color is empty.
const DefaultColor = "red"

// Touchable is a pressable surface that fills its background with Color
// and shows platform feedback while pressed.
//
//	touch.Touchable{
//	    OnPress:  save,
//	    Color:    "#2196f3",
//	    Style:    &layout.Style{BorderRadius: 8},
//	    Children: []*core.Node{label},
//	}
//
// OnPress runs exactly once per completed tap, with no arguments. A nil
// OnPress is a no-op. A panic in OnPress is recovered and reported to the
// global error handler.
type Touchable struct {
	// Key identifies the surface node. Defaults to "touchable".
	Key string
	// OnPress is called once per tap.
	OnPress func()
	// Color is a CSS color for the surface fill. Defaults to "red".
	Color string
	// Style is merged onto the surface style. The fill always wins over
	// a background set here.
	Style *layout.Style
	// Children are drawn inside the surface.
	Children []*core.Node
	// Platform overrides platform.Current() for variant selection. Only
	// read when the state is created.
	Platform *platform.Identity
}

func (t Touchable) CreateState() core.State {
	return &touchableState{}
}

type touchableState struct {
	core.StateBase
	feedback Feedback
	fill     graphics.Color
	pressed  bool
}

func (s *touchableState) widget() Touchable {
	return s.Element().Widget().(Touchable)
}

func (s *touchableState) InitState() {
	w := s.widget()
	id := platform.Current()
	if w.Platform != nil {
		id = *w.Platform
	}
	s.feedback = core.UseController(s, func() Feedback {
		return NewFeedback(SelectVariant(id))
	})
	core.UseListenable(s, s.feedback)
	s.fill = resolveFill(w.Color)
}

func (s *touchableState) DidUpdateWidget(old core.StatefulWidget) {
	if w := s.widget(); w.Color != old.(Touchable).Color {
		s.fill = resolveFill(w.Color)
	}
}

// Variant returns the feedback variant chosen for this instance.
func (s *touchableState) Variant() Variant {
	return s.feedback.Variant()
}

func (s *touchableState) Build(ctx core.BuildContext) *core.Node {
	w := s.widget()
	key := w.Key
	if key == "" {
		key = "touchable"
	}

	style := layout.MergeAll(layout.Style{}, w.Style)
	style.Background = s.fill

	surface := &core.Node{
		Key:      key,
		Style:    style,
		Target:   s,
		Children: w.Children,
	}
	s.feedback.Decorate(surface)
	return surface
}

func (s *touchableState) PointerDown(at graphics.Offset, bounds graphics.Rect) {
	s.pressed = true
	s.feedback.PressDown(at, bounds)
}

func (s *touchableState) PointerUp() {
	if !s.pressed {
		return
	}
	s.pressed = false
	s.feedback.PressUp()
	s.invokePress()
}

func (s *touchableState) PointerCancel() {
	if !s.pressed {
		return
	}
	s.pressed = false
	s.feedback.PressCancel()
}

func (s *touchableState) invokePress() {
	onPress := s.widget().OnPress
	if onPress == nil {
		return
	}
	defer errors.Recover("touch.Touchable.OnPress")
	onPress()
}

// resolveFill parses a surface color, falling back to DefaultColor.
func resolveFill(color string) graphics.Color {
	if color == "" {
		color = DefaultColor
	}
	c, err := graphics.ParseColor(color)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "touch.Touchable",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("surface color: %w", err),
		})
		return graphics.ColorRed
	}
	return c
}
