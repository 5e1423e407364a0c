package testing

import (
	"fmt"

	"github.com/go-drift/fab/pkg/core"
)

// Finder locates nodes in the rendered tree.
type Finder interface {
	// Evaluate returns all matching nodes under root (depth-first pre-order).
	Evaluate(root *core.Node) []*core.Node
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	nodes  []*core.Node
	finder Finder
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() *core.Node {
	if len(r.nodes) == 0 {
		desc := "unknown"
		if r.finder != nil {
			desc = r.finder.Description()
		}
		panic(fmt.Sprintf("Finder found no nodes: %s", desc))
	}
	return r.nodes[0]
}

// FirstOrNil returns the first match, or nil if none.
func (r FinderResult) FirstOrNil() *core.Node {
	if len(r.nodes) == 0 {
		return nil
	}
	return r.nodes[0]
}

// All returns all matches in traversal order.
func (r FinderResult) All() []*core.Node {
	return r.nodes
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.nodes)
}

// Exists returns true if at least one match was found.
func (r FinderResult) Exists() bool {
	return len(r.nodes) > 0
}

type predicateFinder struct {
	fn   func(*core.Node) bool
	desc string
}

func (f *predicateFinder) Evaluate(root *core.Node) []*core.Node {
	var matches []*core.Node
	root.Walk(func(n *core.Node) bool {
		if f.fn(n) {
			matches = append(matches, n)
		}
		return true
	})
	return matches
}

func (f *predicateFinder) Description() string {
	return f.desc
}

// ByKey matches nodes with the given key.
func ByKey(key string) Finder {
	return ByPredicate(fmt.Sprintf("ByKey(%q)", key), func(n *core.Node) bool {
		return n.Key == key
	})
}

// ByKind matches nodes of the given kind.
func ByKind(kind core.Kind) Finder {
	return ByPredicate(fmt.Sprintf("ByKind(%s)", kind), func(n *core.Node) bool {
		return n.Kind == kind
	})
}

// ByText matches text nodes with exactly the given content.
func ByText(text string) Finder {
	return ByPredicate(fmt.Sprintf("ByText(%q)", text), func(n *core.Node) bool {
		return n.Kind == core.KindText && n.Text == text
	})
}

// ByTapTarget matches nodes that receive taps.
func ByTapTarget() Finder {
	return ByPredicate("ByTapTarget()", func(n *core.Node) bool {
		return n.Target != nil
	})
}

// ByPredicate matches nodes satisfying fn.
func ByPredicate(desc string, fn func(*core.Node) bool) Finder {
	return &predicateFinder{fn: fn, desc: desc}
}
