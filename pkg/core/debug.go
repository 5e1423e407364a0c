package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DebugDump returns an indented outline of the tree rooted at n, one node
// per line:
//
//	View "fab.container" [281,558 62x62]
//	  View "fab.button" [284,561 56x56]
//	    RippleSurface "fab.surface" [284,561 56x56] clip
//
// Optional fields are listed only when set.
func DebugDump(n *Node) string {
	var sb strings.Builder
	dumpNode(&sb, n, 0)
	return sb.String()
}

func dumpNode(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(string(n.Kind))
	if n.Key != "" {
		sb.WriteString(" " + strconv.Quote(n.Key))
	}
	b := n.Bounds
	fmt.Fprintf(sb, " [%s,%s %sx%s]", num(b.Left), num(b.Top), num(b.Width()), num(b.Height()))

	if n.Kind == KindText {
		sb.WriteString(" " + strconv.Quote(n.Text))
	}
	if n.Opacity != nil {
		sb.WriteString(" opacity=" + num(*n.Opacity))
	}
	if n.Transform != nil && !n.Transform.IsIdentity() {
		fmt.Fprintf(sb, " scaleX=%s rotate=%s", num(n.Transform.ScaleX), num(n.Transform.Rotation))
	}
	if n.ClipToBounds {
		sb.WriteString(" clip")
	}
	if n.Ink != nil {
		fmt.Fprintf(sb, " ink=%s@%s,%s", num(n.Ink.Radius), num(n.Ink.Center.X), num(n.Ink.Center.Y))
	}
	if n.Target != nil {
		sb.WriteString(" tappable")
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		dumpNode(sb, child, depth+1)
	}
}

// num formats a float with at most two decimals and no trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
