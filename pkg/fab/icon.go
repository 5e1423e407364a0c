package fab

import (
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/layout"
)

// IconFontSize is the glyph size passed to icon builders.
const IconFontSize = 24

// IconBuilder renders the icon content. The button computes the icon
// style and passes it in; builders apply it to whatever they draw.
type IconBuilder func(style layout.TextStyle) *core.Node

// TextIcon returns a builder drawing a text glyph.
func TextIcon(glyph string) IconBuilder {
	return func(style layout.TextStyle) *core.Node {
		return core.TextNode(glyph, style)
	}
}

// DefaultIcon draws a "+" glyph.
var DefaultIcon = TextIcon("+")
