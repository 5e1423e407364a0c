// Package core provides the stateful widget lifecycle and the node tree
// widgets render into.
//
// A [StatefulWidget] is an immutable configuration. The framework mounts
// it as an [Element], creates its [State] once, and calls Build whenever
// the state asks for it through SetState. Build returns a [Node] tree,
// the rendered visual subtree consumed by hosts (tests, previews, native
// bridges).
//
// Embed [StateBase] in a state struct to get SetState, disposal hooks and
// no-op defaults:
//
//	type counterState struct {
//	    core.StateBase
//	    count int
//	}
//
//	func (s *counterState) Build(ctx core.BuildContext) *core.Node {
//	    return core.TextNode(fmt.Sprint(s.count), layout.TextStyle{FontSize: 14})
//	}
//
// Child stateful widgets are composed with [BuildContext.Mount], which keeps
// the child's state alive across parent rebuilds as long as the key and
// widget type stay the same.
package core
