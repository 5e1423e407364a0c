package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
)

var backgroundColor = graphics.RGB(0xFA, 0xFA, 0xFA)

// drawNode paints n and its subtree. Opacity and transform accumulate
// down the tree; transforms only affect text.
func drawNode(screen *ebiten.Image, n *core.Node, opacity float64, tr graphics.Transform) {
	if n == nil || n.Bounds.IsEmpty() {
		return
	}
	opacity *= n.EffectiveOpacity()
	tr = compose(tr, n.EffectiveTransform())

	if n.Kind == core.KindText {
		drawText(screen, n, opacity, tr)
		return
	}
	drawBox(screen, n, opacity)
	for _, child := range n.Children {
		drawNode(screen, child, opacity, tr)
	}
}

func compose(outer, inner graphics.Transform) graphics.Transform {
	return graphics.Transform{ScaleX: outer.ScaleX * inner.ScaleX, Rotation: outer.Rotation + inner.Rotation}
}

func drawBox(screen *ebiten.Image, n *core.Node, opacity float64) {
	s := n.Style
	b := n.Bounds
	round := s.BorderRadius >= min(b.Width(), b.Height())/2

	if s.Shadow != nil && s.Elevation > 0 {
		shadow := s.Shadow.Color.WithAlpha(s.Shadow.Opacity * 0.3)
		fillShape(screen, b.Left+s.Shadow.Offset.X, b.Top+s.Shadow.Offset.Y+s.Elevation/2,
			b.Width(), b.Height(), round, toNRGBA(shadow, opacity))
	}
	if s.Background.Alpha() > 0 {
		fillShape(screen, b.Left, b.Top, b.Width(), b.Height(), round, toNRGBA(s.Background, opacity))
	}
	if n.Ink != nil {
		// The ink disc is capped at the surface size, which matches the
		// clip exactly for presses at the centre of a round surface.
		r := n.Ink.Radius
		if n.ClipToBounds {
			r = min(r, min(b.Width(), b.Height())/2)
		}
		vector.DrawFilledCircle(screen,
			float32(b.Left+n.Ink.Center.X), float32(b.Top+n.Ink.Center.Y), float32(r),
			toNRGBA(n.Ink.Color, opacity), true)
	}
}

func fillShape(screen *ebiten.Image, x, y, w, h float64, round bool, clr color.Color) {
	if round {
		vector.DrawFilledCircle(screen, float32(x+w/2), float32(y+h/2), float32(min(w, h)/2), clr, true)
		return
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, true)
}

// drawText draws "+" as two strokes so it can rotate and scale with its
// transform. Other text is printed with the debug font, untransformed.
func drawText(screen *ebiten.Image, n *core.Node, opacity float64, tr graphics.Transform) {
	if n.Text != "+" {
		ebitenutil.DebugPrintAt(screen, n.Text, int(n.Bounds.Left), int(n.Bounds.Top))
		return
	}
	clr := toNRGBA(n.TextStyle.Color, opacity)
	width := float32(max(2, n.TextStyle.FontSize/8))
	for _, seg := range plusSegments(n.Bounds.Center(), n.TextStyle.FontSize/2, tr) {
		vector.StrokeLine(screen, float32(seg[0].X), float32(seg[0].Y), float32(seg[1].X), float32(seg[1].Y), width, clr, true)
	}
}

// plusSegments returns the two strokes of a "+" of half-length arm
// centred on c, after applying tr around c.
func plusSegments(c graphics.Offset, arm float64, tr graphics.Transform) [2][2]graphics.Offset {
	ends := [2][2]graphics.Offset{
		{{X: -arm}, {X: arm}},
		{{Y: -arm}, {Y: arm}},
	}
	var out [2][2]graphics.Offset
	for i, seg := range ends {
		for j, p := range seg {
			q := tr.Apply(p)
			out[i][j] = graphics.Offset{X: c.X + q.X, Y: c.Y + q.Y}
		}
	}
	return out
}

func toNRGBA(c graphics.Color, opacity float64) color.NRGBA {
	r, g, b, a := c.RGBA()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(float64(a) * min(max(opacity, 0), 1)))}
}
