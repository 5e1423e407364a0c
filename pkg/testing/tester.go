package testing

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/engine"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/platform"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 800
	// FrameDuration is the fake clock advance per frame in PumpFor and
	// PumpAndSettle.
	FrameDuration = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: framework did not settle")

// Tester mounts widgets on a headless engine. It drives the same frame
// phases as a host (tickers, build, layout) on a fake clock.
type Tester struct {
	engine       *engine.Engine
	clock        *FakeClock
	prevClock    animation.Clock
	prevPlatform *platform.Identity
	nextPointer  int64
}

// NewTester creates a tester and installs its fake clock.
// Call Cleanup when done, or use NewTesterWithT instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	return &Tester{
		engine:    engine.New(graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight}),
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock and platform.
func (t *Tester) Cleanup() {
	t.engine.Close()
	animation.SetClock(t.prevClock)
	if t.prevPlatform != nil {
		platform.SetCurrent(*t.prevPlatform)
		t.prevPlatform = nil
	}
}

// Engine returns the engine hosting the tree.
func (t *Tester) Engine() *engine.Engine {
	return t.engine
}

// SetSize sets the logical surface size.
func (t *Tester) SetSize(size graphics.Size) {
	t.engine.SetSize(size)
}

// SetPlatform simulates a host platform. Widgets resolve platform
// behaviour when mounted, so call it before PumpWidget.
func (t *Tester) SetPlatform(id platform.Identity) {
	prev := platform.SetCurrent(id)
	if t.prevPlatform == nil {
		t.prevPlatform = &prev
	}
}

// Clock returns the fake clock for advancing time.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// PumpWidget mounts widget as a fresh root, replacing any previous tree,
// and runs one frame.
func (t *Tester) PumpWidget(widget core.StatefulWidget) {
	t.engine.SetApp(widget)
	t.Pump()
}

// UpdateWidget gives the mounted root a new configuration, as a parent
// rebuild would, and runs one frame. State is preserved.
func (t *Tester) UpdateWidget(widget core.StatefulWidget) {
	t.engine.UpdateApp(widget)
	t.Pump()
}

// Pump runs a single frame at the current fake time: tickers, build, layout.
func (t *Tester) Pump() {
	t.engine.StepFrame()
}

// PumpFor advances the clock by d in FrameDuration steps, pumping after
// each step. The last step is shortened so exactly d elapses.
func (t *Tester) PumpFor(d time.Duration) {
	for d > 0 {
		step := min(FrameDuration, d)
		t.clock.Advance(step)
		t.Pump()
		d -= step
	}
}

// PumpAndSettle pumps frames until nothing is animating or dirty.
// Returns ErrSettleTimeout if that takes longer than timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for {
		t.Pump()
		if t.engine.IsSettled() {
			return nil
		}
		if elapsed >= timeout {
			return ErrSettleTimeout
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
}

// Root returns the root element, or nil before PumpWidget.
func (t *Tester) Root() *core.Element {
	return t.engine.Root()
}

// RootNode returns the rendered tree, or nil before PumpWidget.
func (t *Tester) RootNode() *core.Node {
	return t.engine.RootNode()
}

// Find evaluates a finder against the rendered tree.
func (t *Tester) Find(finder Finder) FinderResult {
	root := t.engine.RootNode()
	if root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{nodes: finder.Evaluate(root), finder: finder}
}

// Press puts a pointer down at the centre of the first node matched by
// finder. Complete the gesture with Release or Cancel.
func (t *Tester) Press(finder Finder) (*Gesture, error) {
	node := t.Find(finder).FirstOrNil()
	if node == nil {
		return nil, fmt.Errorf("press: no node found for %s", finder.Description())
	}
	t.nextPointer++
	g := &Gesture{engine: t.engine, id: t.nextPointer, at: node.Bounds.Center()}
	if !t.engine.HandlePointer(engine.PointerEvent{
		ID:       g.id,
		Phase:    engine.PointerDown,
		Position: g.at,
	}) {
		return nil, fmt.Errorf("press: %s is not tappable", finder.Description())
	}
	return g, nil
}

// Tap presses and releases the first node matched by finder, then pumps
// one frame.
func (t *Tester) Tap(finder Finder) error {
	g, err := t.Press(finder)
	if err != nil {
		return err
	}
	g.Release()
	t.Pump()
	return nil
}

// Gesture is a pointer held down by Press.
type Gesture struct {
	engine *engine.Engine
	id     int64
	at     graphics.Offset
}

// Release lifts the pointer where it went down, completing the tap.
func (g *Gesture) Release() {
	g.ReleaseAt(g.at)
}

// ReleaseAt lifts the pointer at a root position. Off the pressed node
// this cancels the tap.
func (g *Gesture) ReleaseAt(at graphics.Offset) {
	g.engine.HandlePointer(engine.PointerEvent{ID: g.id, Phase: engine.PointerUp, Position: at})
}

// Cancel aborts the gesture without completing a tap.
func (g *Gesture) Cancel() {
	g.engine.HandlePointer(engine.PointerEvent{ID: g.id, Phase: engine.PointerCancel})
}
