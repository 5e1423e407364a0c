package core

import (
	"unicode/utf8"

	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
)

// Approximate glyph metrics used to size text without a font backend.
const (
	glyphWidthFactor  = 0.6
	lineHeightFactor  = 1.2
	defaultTextHeight = 14
)

// Layout assigns Bounds to root and all descendants inside a viewport.
// An absolutely positioned root is placed against the viewport edges;
// any other root fills the viewport.
//
// The model is deliberately small: absolutely positioned children are
// placed by their Right/Bottom insets, flex children fill their parent,
// other children take their explicit size (or their intrinsic size) and
// are centred on each axis whose alignment is AlignCenter.
func Layout(root *Node, viewport graphics.Size) {
	if root == nil {
		return
	}
	screen := &Node{Bounds: graphics.RectFromLTWH(0, 0, viewport.Width, viewport.Height)}
	if root.Style.Position == layout.PositionAbsolute {
		root.Bounds = placeChild(screen, root)
	} else {
		root.Bounds = screen.Bounds
	}
	layoutChildren(root)
}

func layoutChildren(parent *Node) {
	for _, child := range parent.Children {
		if child == nil {
			continue
		}
		child.Bounds = placeChild(parent, child)
		layoutChildren(child)
	}
}

func placeChild(parent, child *Node) graphics.Rect {
	area := parent.Bounds
	s := child.Style

	if s.Position == layout.PositionAbsolute {
		w, h := intrinsicSize(child)
		return graphics.RectFromLTWH(area.Right-s.Right-w, area.Bottom-s.Bottom-h, w, h)
	}
	if s.Flex > 0 {
		return area
	}

	w, h := intrinsicSize(child)
	if s.Width == 0 && !s.ExactSize && parent.Style.AlignItems == layout.AlignStretch {
		w = area.Width()
	}

	x, y := area.Left, area.Top
	if parent.Style.AlignItems == layout.AlignCenter {
		x = area.Left + (area.Width()-w)/2
	}
	if parent.Style.JustifyContent == layout.AlignCenter {
		y = area.Top + (area.Height()-h)/2
	}
	return graphics.RectFromLTWH(x, y, w, h)
}

// intrinsicSize returns the explicit size of n, falling back to the size
// of its content.
func intrinsicSize(n *Node) (float64, float64) {
	w, h := n.Style.Width, n.Style.Height
	if n.Style.ExactSize || (w != 0 && h != 0) {
		return w, h
	}

	var cw, ch float64
	if n.Kind == KindText {
		size := n.TextStyle.FontSize
		if size == 0 {
			size = defaultTextHeight
		}
		cw = float64(utf8.RuneCountInString(n.Text)) * size * glyphWidthFactor
		ch = size * lineHeightFactor
	}
	for _, child := range n.Children {
		if child == nil || child.Style.Position == layout.PositionAbsolute {
			continue
		}
		childW, childH := intrinsicSize(child)
		cw = max(cw, childW)
		ch = max(ch, childH)
	}

	if w == 0 {
		w = cw
	}
	if h == 0 {
		h = ch
	}
	return w, h
}
