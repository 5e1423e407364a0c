// Package layout describes how nodes are sized, positioned and decorated.
//
// A [Style] is a plain value. Zero fields mean "unset", so styles compose
// with [Style.Merge]: a container computes its own style, merges the
// caller's override on top and passes the result down explicitly.
package layout

import "github.com/go-drift/fab/pkg/graphics"

// Position selects how a node is placed within its parent.
type Position int

const (
	// PositionRelative places the node in normal flow.
	PositionRelative Position = iota
	// PositionAbsolute places the node using its Right/Bottom insets.
	PositionAbsolute
)

// String returns a human-readable representation of the position.
func (p Position) String() string {
	if p == PositionAbsolute {
		return "absolute"
	}
	return "relative"
}

// Align controls cross-axis (AlignItems) and main-axis (JustifyContent)
// placement of children.
type Align int

const (
	// AlignUnset inherits the default (start).
	AlignUnset Align = iota
	AlignStart
	AlignCenter
	AlignEnd
	AlignStretch
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	case AlignStretch:
		return "stretch"
	default:
		return "unset"
	}
}

// Shadow is a drop shadow drawn beneath a node.
type Shadow struct {
	Color   graphics.Color
	Opacity float64
	Radius  float64
	Offset  graphics.Offset
}

// Style holds box properties for a node. Zero values are unset.
type Style struct {
	Position Position
	// Right and Bottom are insets from the parent edges for absolutely
	// positioned nodes.
	Right  float64
	Bottom float64

	Width  float64
	Height float64
	// ExactSize makes Width and Height binding even when zero, for boxes
	// that animate down to nothing.
	ExactSize bool
	// Flex makes the node fill its parent along the main axis when > 0.
	Flex float64

	AlignItems     Align
	JustifyContent Align

	BorderRadius float64
	Background   graphics.Color
	Shadow       *Shadow
	// Elevation is the platform elevation hint used for Android shadows.
	Elevation float64
}

// Merge returns s with every set field of over applied on top.
func (s Style) Merge(over Style) Style {
	if over.Position != PositionRelative {
		s.Position = over.Position
	}
	if over.Right != 0 {
		s.Right = over.Right
	}
	if over.Bottom != 0 {
		s.Bottom = over.Bottom
	}
	if over.Width != 0 {
		s.Width = over.Width
	}
	if over.Height != 0 {
		s.Height = over.Height
	}
	if over.ExactSize {
		s.ExactSize = true
	}
	if over.Flex != 0 {
		s.Flex = over.Flex
	}
	if over.AlignItems != AlignUnset {
		s.AlignItems = over.AlignItems
	}
	if over.JustifyContent != AlignUnset {
		s.JustifyContent = over.JustifyContent
	}
	if over.BorderRadius != 0 {
		s.BorderRadius = over.BorderRadius
	}
	if over.Background != 0 {
		s.Background = over.Background
	}
	if over.Shadow != nil {
		shadow := *over.Shadow
		s.Shadow = &shadow
	}
	if over.Elevation != 0 {
		s.Elevation = over.Elevation
	}
	return s
}

// MergeAll merges each override in order, so later styles win.
func MergeAll(base Style, overrides ...*Style) Style {
	for _, o := range overrides {
		if o != nil {
			base = base.Merge(*o)
		}
	}
	return base
}

// TextStyle describes how text content is drawn.
type TextStyle struct {
	FontSize float64
	Color    graphics.Color
}
