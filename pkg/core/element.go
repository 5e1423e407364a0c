package core

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-drift/fab/pkg/errors"
)

// StatefulWidget is an immutable configuration that owns a State.
type StatefulWidget interface {
	CreateState() State
}

// State holds the mutable part of a mounted StatefulWidget.
type State interface {
	// SetElement binds the state to its element. Called by the framework.
	SetElement(element *Element)
	// InitState runs once, before the first Build.
	InitState()
	// DidUpdateWidget runs when the parent rebuilds with a new
	// configuration. Element().Widget() already returns the new one.
	DidUpdateWidget(oldWidget StatefulWidget)
	// Build returns the node subtree for the current configuration.
	Build(ctx BuildContext) *Node
	// Dispose releases resources. Runs once, on unmount.
	Dispose()
}

// Element is a StatefulWidget mounted at a position in the tree.
//
// An element's Node pointer is stable for its whole lifetime: rebuilds
// overwrite the node in place, so parents keep referring to the latest
// output of their children without being rebuilt themselves.
type Element struct {
	widget   StatefulWidget
	state    State
	owner    *BuildOwner
	parent   *Element
	depth    int
	node     *Node
	children map[string]*Element
	dirty    bool
	mounted  bool
}

// MountRoot mounts widget as the root of a new tree and builds it.
func MountRoot(widget StatefulWidget, owner *BuildOwner) *Element {
	return mount(widget, owner, nil)
}

func mount(widget StatefulWidget, owner *BuildOwner, parent *Element) *Element {
	e := &Element{
		widget:   widget,
		owner:    owner,
		parent:   parent,
		node:     &Node{Kind: KindView},
		children: make(map[string]*Element),
		mounted:  true,
	}
	if parent != nil {
		e.depth = parent.depth + 1
	}
	e.state = widget.CreateState()
	e.state.SetElement(e)
	e.state.InitState()
	e.rebuild()
	return e
}

// Widget returns the current configuration.
func (e *Element) Widget() StatefulWidget {
	return e.widget
}

// State returns the element's state.
func (e *Element) State() State {
	return e.state
}

// Node returns the element's rendered subtree.
func (e *Element) Node() *Node {
	return e.node
}

// Depth returns the distance from the root element.
func (e *Element) Depth() int {
	return e.depth
}

// Mounted reports whether the element is still part of a tree.
func (e *Element) Mounted() bool {
	return e.mounted
}

// MarkNeedsBuild schedules the element for rebuild on the next flush.
func (e *Element) MarkNeedsBuild() {
	if e.dirty || !e.mounted {
		return
	}
	e.dirty = true
	if e.owner != nil {
		e.owner.ScheduleBuild(e)
	}
}

// Update replaces the configuration of a mounted element and rebuilds it.
func (e *Element) Update(widget StatefulWidget) {
	old := e.widget
	e.widget = widget
	e.state.DidUpdateWidget(old)
	e.rebuild()
}

// RebuildIfNeeded rebuilds the element if it is dirty.
func (e *Element) RebuildIfNeeded() {
	if e.dirty && e.mounted {
		e.rebuild()
	}
}

// Unmount disposes the element's state and all child elements.
func (e *Element) Unmount() {
	if !e.mounted {
		return
	}
	for key, child := range e.children {
		child.Unmount()
		delete(e.children, key)
	}
	e.mounted = false
	e.dirty = false
	e.state.Dispose()
}

func (e *Element) rebuild() {
	e.dirty = false
	ctx := BuildContext{element: e, used: make(map[string]bool)}
	built := e.safeBuild(ctx)
	if built == nil {
		built = &Node{Kind: KindView}
	}
	*e.node = *built

	for key, child := range e.children {
		if !ctx.used[key] {
			child.Unmount()
			delete(e.children, key)
		}
	}
}

// safeBuild runs Build with panic recovery. A panicking build is reported
// and keeps the previous output on screen.
func (e *Element) safeBuild(ctx BuildContext) (built *Node) {
	defer func() {
		if r := recover(); r != nil {
			errors.ReportPanic(&errors.PanicError{
				Op:         reflect.TypeOf(e.widget).String() + ".Build",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			})
			prev := *e.node
			built = &prev
		}
	}()
	return e.state.Build(ctx)
}

// BuildContext is passed to Build.
type BuildContext struct {
	element *Element
	used    map[string]bool
}

// Element returns the element being built.
func (ctx BuildContext) Element() *Element {
	return ctx.element
}

// Mount composes a child stateful widget under key and returns its node.
// The child's state survives parent rebuilds while the key and the widget
// type stay the same; otherwise the old child is disposed and a new one
// created.
func (ctx BuildContext) Mount(key string, widget StatefulWidget) *Node {
	parent := ctx.element
	if ctx.used[key] {
		panic(fmt.Sprintf("core: duplicate child key %q in %T", key, parent.widget))
	}
	ctx.used[key] = true

	if child, ok := parent.children[key]; ok {
		if reflect.TypeOf(child.widget) == reflect.TypeOf(widget) {
			child.Update(widget)
			return child.node
		}
		child.Unmount()
	}
	child := mount(widget, parent.owner, parent)
	parent.children[key] = child
	return child.node
}
