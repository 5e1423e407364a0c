package engine

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
)

// Engine owns a root element and runs its frame pipeline.
type Engine struct {
	owner *core.BuildOwner
	root  *core.Element
	size  graphics.Size
	scale float64

	// pointers maps active pointer IDs to the target that took the down
	// event.
	pointers map[int64]core.TapTarget

	dispatchMu    sync.Mutex
	dispatchQueue []func()

	pendingFrame atomic.Bool
	frames       int

	// OnNeedsFrame is called when something schedules work for the next
	// frame, so hosts with on-demand scheduling can request one.
	OnNeedsFrame func()
}

// New creates an engine with a logical surface of the given size.
func New(size graphics.Size) *Engine {
	e := &Engine{
		owner:    core.NewBuildOwner(),
		size:     size,
		scale:    1,
		pointers: make(map[int64]core.TapTarget),
	}
	e.owner.OnNeedsFrame = e.RequestFrame
	return e
}

// SetApp mounts widget as a fresh root, disposing any previous tree.
// The new tree is built immediately and laid out on the next frame.
func (e *Engine) SetApp(widget core.StatefulWidget) {
	e.unmountRoot()
	e.root = core.MountRoot(widget, e.owner)
	e.RequestFrame()
}

// UpdateApp gives the mounted root a new configuration, keeping its
// state. Without a root it behaves like SetApp.
func (e *Engine) UpdateApp(widget core.StatefulWidget) {
	if e.root == nil {
		e.SetApp(widget)
		return
	}
	e.root.Update(widget)
	e.RequestFrame()
}

// Root returns the root element, or nil before SetApp.
func (e *Engine) Root() *core.Element {
	return e.root
}

// RootNode returns the rendered tree, or nil before SetApp.
func (e *Engine) RootNode() *core.Node {
	if e.root == nil {
		return nil
	}
	return e.root.Node()
}

// Size returns the logical surface size.
func (e *Engine) Size() graphics.Size {
	return e.size
}

// SetSize changes the logical surface size.
func (e *Engine) SetSize(size graphics.Size) {
	if size == e.size {
		return
	}
	e.size = size
	e.RequestFrame()
}

// SetDeviceScale sets the ratio of device pixels to logical pixels used
// to convert pointer positions. Non-positive values are ignored.
func (e *Engine) SetDeviceScale(scale float64) {
	if scale <= 0 {
		return
	}
	e.scale = scale
}

// Dispatch schedules a callback to run at the start of the next frame.
// Safe to call from any goroutine.
func (e *Engine) Dispatch(callback func()) {
	if callback == nil {
		return
	}
	e.dispatchMu.Lock()
	e.dispatchQueue = append(e.dispatchQueue, callback)
	e.dispatchMu.Unlock()
	e.RequestFrame()
}

// RequestFrame marks the tree as needing a frame.
func (e *Engine) RequestFrame() {
	e.pendingFrame.Store(true)
	if e.OnNeedsFrame != nil {
		e.OnNeedsFrame()
	}
}

// NeedsFrame reports whether StepFrame would do any work.
func (e *Engine) NeedsFrame() bool {
	if e.pendingFrame.Load() || animation.HasActiveTickers() || e.owner.NeedsWork() {
		return true
	}
	e.dispatchMu.Lock()
	defer e.dispatchMu.Unlock()
	return len(e.dispatchQueue) > 0
}

// IsSettled reports whether nothing is animating and no element is
// waiting to rebuild.
func (e *Engine) IsSettled() bool {
	return !animation.HasActiveTickers() && !e.owner.NeedsWork()
}

// Frames returns the number of frames run so far.
func (e *Engine) Frames() int {
	return e.frames
}

// StepFrame runs one frame: dispatched callbacks, tickers, build, layout.
func (e *Engine) StepFrame() {
	e.pendingFrame.Store(false)
	e.frames++

	e.dispatchMu.Lock()
	callbacks := e.dispatchQueue
	e.dispatchQueue = nil
	e.dispatchMu.Unlock()
	for _, cb := range callbacks {
		cb()
	}

	animation.StepTickers()
	e.owner.FlushBuild()
	if e.root != nil {
		core.Layout(e.root.Node(), e.size)
	}
}

// Close unmounts the tree and drops active pointers.
func (e *Engine) Close() {
	e.unmountRoot()
}

func (e *Engine) unmountRoot() {
	for id, target := range e.pointers {
		target.PointerCancel()
		delete(e.pointers, id)
	}
	if e.root != nil {
		e.root.Unmount()
		e.root = nil
	}
}
