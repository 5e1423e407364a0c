package core

import (
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
)

// Kind names what a node draws. Packages may declare their own kinds.
type Kind string

const (
	// KindView is a box that draws its style and holds children.
	KindView Kind = "View"
	// KindText draws Text with TextStyle.
	KindText Kind = "Text"
)

// TapTarget receives the pointer events of a single discrete tap.
// at is the pointer position and bounds the target node's laid-out
// rectangle, both in root coordinates.
type TapTarget interface {
	PointerDown(at graphics.Offset, bounds graphics.Rect)
	PointerUp()
	PointerCancel()
}

// Ink is a circular ink splash drawn over a node's background.
// Center is relative to the node's top-left corner.
type Ink struct {
	Center graphics.Offset
	Radius float64
	Color  graphics.Color
}

// Node is one box of a rendered visual subtree.
type Node struct {
	Kind Kind
	// Key identifies the node to finders and hosts.
	Key   string
	Style layout.Style

	// Transform applies to the node's content around its centre.
	// Nil means identity.
	Transform *graphics.Transform
	// Opacity multiplies the node's alpha. Nil means fully opaque.
	Opacity *float64

	Text      string
	TextStyle layout.TextStyle

	// Ink is drawn above the background and below children.
	Ink *Ink
	// ClipToBounds confines background, ink and children to the node's
	// rounded bounds.
	ClipToBounds bool

	// Target receives taps landing on this node.
	Target TapTarget

	Children []*Node

	// Bounds is the node's rectangle in root coordinates, set by Layout.
	Bounds graphics.Rect
}

// ViewNode returns a View with the given key, style and children.
func ViewNode(key string, style layout.Style, children ...*Node) *Node {
	return &Node{Kind: KindView, Key: key, Style: style, Children: children}
}

// TextNode returns a Text node.
func TextNode(text string, style layout.TextStyle) *Node {
	return &Node{Kind: KindText, Text: text, TextStyle: style}
}

// EffectiveOpacity returns the node opacity, 1 when unset.
func (n *Node) EffectiveOpacity() float64 {
	if n.Opacity == nil {
		return 1
	}
	return *n.Opacity
}

// EffectiveTransform returns the node transform, identity when unset.
func (n *Node) EffectiveTransform() graphics.Transform {
	if n.Transform == nil {
		return graphics.IdentityTransform
	}
	return *n.Transform
}

// Walk visits n and its descendants depth-first in pre-order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Find returns the first node (pre-order) matching pred, or nil.
func (n *Node) Find(pred func(*Node) bool) *Node {
	var found *Node
	n.Walk(func(node *Node) bool {
		if found != nil {
			return false
		}
		if pred(node) {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindKey returns the first node with the given key, or nil.
func (n *Node) FindKey(key string) *Node {
	return n.Find(func(node *Node) bool { return node.Key == key })
}

// HitTest returns the deepest node with a TapTarget whose bounds contain p.
func (n *Node) HitTest(p graphics.Offset) *Node {
	if n == nil || !n.Bounds.Contains(p) {
		return nil
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if hit := n.Children[i].HitTest(p); hit != nil {
			return hit
		}
	}
	if n.Target != nil {
		return n
	}
	return nil
}

// Float64 returns a pointer to v, for optional node fields.
func Float64(v float64) *float64 {
	return &v
}
