package engine

import (
	"fmt"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/graphics"
)

// PointerPhase is the stage of a pointer gesture.
type PointerPhase int

const (
	PointerDown PointerPhase = iota
	PointerUp
	PointerCancel
)

// String returns a human-readable representation of the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is one pointer sample in device pixels.
type PointerEvent struct {
	ID       int64
	Phase    PointerPhase
	Position graphics.Offset
}

// HandlePointer delivers a pointer event. A down event is hit tested
// against the last laid-out tree and the target it lands on owns the
// pointer ID. An up event completes the tap only when it lands on the
// same target again; released anywhere else the target is cancelled.
// Returns true if the event reached a target.
func (e *Engine) HandlePointer(event PointerEvent) bool {
	switch event.Phase {
	case PointerDown:
		if _, ok := e.pointers[event.ID]; ok {
			return false
		}
		at := graphics.Offset{X: event.Position.X / e.scale, Y: event.Position.Y / e.scale}
		hit := e.HitTest(at)
		if hit == nil {
			return false
		}
		e.pointers[event.ID] = hit.Target
		hit.Target.PointerDown(at, hit.Bounds)
		e.RequestFrame()
		return true

	case PointerUp, PointerCancel:
		target, ok := e.pointers[event.ID]
		if !ok {
			return false
		}
		delete(e.pointers, event.ID)
		if event.Phase == PointerUp && e.releasedOn(target, event.Position) {
			target.PointerUp()
		} else {
			target.PointerCancel()
		}
		e.RequestFrame()
		return true
	}
	return false
}

func (e *Engine) releasedOn(target core.TapTarget, position graphics.Offset) bool {
	hit := e.HitTest(graphics.Offset{X: position.X / e.scale, Y: position.Y / e.scale})
	return hit != nil && hit.Target == target
}

// HitTest returns the deepest tappable node at a logical position, or
// nil.
func (e *Engine) HitTest(at graphics.Offset) *core.Node {
	if e.root == nil {
		return nil
	}
	return e.root.Node().HitTest(at)
}
