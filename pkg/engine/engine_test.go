package engine_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/engine"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
	fabtest "github.com/go-drift/fab/pkg/testing"
)

type counter struct {
	downs, ups, cancels int
}

type pad struct {
	events *counter
	label  string
}

func (p pad) CreateState() core.State { return &padState{} }

type padState struct {
	core.StateBase
	glow *animation.Value
}

func (s *padState) InitState() {
	s.glow = core.UseController(s, func() *animation.Value { return animation.NewValue(0) })
	core.UseListenable(s, s.glow)
}

func (s *padState) Build(ctx core.BuildContext) *core.Node {
	w := s.Element().Widget().(pad)
	return core.ViewNode("screen", layout.Style{AlignItems: layout.AlignCenter, JustifyContent: layout.AlignCenter},
		&core.Node{
			Kind:    core.KindView,
			Key:     "pad",
			Style:   layout.Style{Width: 100, Height: 50},
			Opacity: core.Float64(s.glow.Value()),
			Target:  s,
			Text:    w.label,
		},
	)
}

func (s *padState) PointerDown(graphics.Offset, graphics.Rect) {
	s.Element().Widget().(pad).events.downs++
	s.glow.AnimateTo(1, animation.Transition{Duration: 100 * time.Millisecond})
}

func (s *padState) PointerUp()     { s.Element().Widget().(pad).events.ups++ }
func (s *padState) PointerCancel() { s.Element().Widget().(pad).events.cancels++ }

func useFakeClock(t *testing.T) *fabtest.FakeClock {
	t.Helper()
	clk := fabtest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func TestEngineLaysOutOnFrame(t *testing.T) {
	useFakeClock(t)
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	defer e.Close()

	e.SetApp(pad{events: &counter{}})
	if !e.NeedsFrame() {
		t.Fatal("expected a frame after SetApp")
	}
	e.StepFrame()

	node := e.RootNode().FindKey("pad")
	if want := graphics.RectFromLTWH(100, 75, 100, 50); node.Bounds != want {
		t.Errorf("pad bounds = %v, want %v", node.Bounds, want)
	}
	if e.NeedsFrame() {
		t.Error("no frame should be needed once settled")
	}

	e.SetSize(graphics.Size{Width: 200, Height: 200})
	e.StepFrame()
	if want := graphics.RectFromLTWH(50, 75, 100, 50); node.Bounds != want {
		t.Errorf("pad bounds after resize = %v, want %v", node.Bounds, want)
	}
	if e.Frames() != 2 {
		t.Errorf("Frames = %d, want 2", e.Frames())
	}
}

func TestEngineHandlePointer(t *testing.T) {
	clk := useFakeClock(t)
	events := &counter{}
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	defer e.Close()
	e.SetApp(pad{events: events})
	e.StepFrame()

	if e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerDown, Position: graphics.Offset{X: 5, Y: 5}}) {
		t.Error("a miss should not reach a target")
	}
	if !e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerDown, Position: graphics.Offset{X: 150, Y: 100}}) {
		t.Fatal("expected the pad to take the pointer")
	}
	if e.IsSettled() {
		t.Error("press animation should be running")
	}

	clk.Advance(100 * time.Millisecond)
	e.StepFrame()
	if got := e.RootNode().FindKey("pad").EffectiveOpacity(); got != 1 {
		t.Errorf("opacity = %v, want 1", got)
	}

	e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerUp, Position: graphics.Offset{X: 150, Y: 100}})
	if e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerUp, Position: graphics.Offset{X: 150, Y: 100}}) {
		t.Error("a released pointer should not reach a target again")
	}
	if events.downs != 1 || events.ups != 1 || events.cancels != 0 {
		t.Errorf("events = %+v, want 1 down and 1 up", *events)
	}
}

func TestEngineReleaseOffTargetCancels(t *testing.T) {
	useFakeClock(t)
	events := &counter{}
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	defer e.Close()
	e.SetApp(pad{events: events})
	e.StepFrame()

	e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerDown, Position: graphics.Offset{X: 150, Y: 100}})
	if !e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerUp, Position: graphics.Offset{X: 0, Y: 0}}) {
		t.Error("the pressed target should still receive the release")
	}
	if events.ups != 0 || events.cancels != 1 {
		t.Errorf("events = %+v, want a cancel for a release off the pad", *events)
	}
}

func TestEngineDeviceScale(t *testing.T) {
	useFakeClock(t)
	events := &counter{}
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	defer e.Close()
	e.SetDeviceScale(2)
	e.SetApp(pad{events: events})
	e.StepFrame()

	if !e.HandlePointer(engine.PointerEvent{ID: 7, Phase: engine.PointerDown, Position: graphics.Offset{X: 300, Y: 200}}) {
		t.Fatal("expected device pixels to be scaled to the pad")
	}
}

func TestEngineCloseCancelsPointers(t *testing.T) {
	useFakeClock(t)
	events := &counter{}
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	e.SetApp(pad{events: events})
	e.StepFrame()

	e.HandlePointer(engine.PointerEvent{ID: 1, Phase: engine.PointerDown, Position: graphics.Offset{X: 150, Y: 100}})
	e.Close()
	if events.cancels != 1 {
		t.Errorf("cancels = %d, want 1", events.cancels)
	}
	if e.Root() != nil {
		t.Error("Close should unmount the root")
	}
}

func TestEngineUpdateAppKeepsState(t *testing.T) {
	useFakeClock(t)
	e := engine.New(graphics.Size{Width: 300, Height: 200})
	defer e.Close()
	e.SetApp(pad{events: &counter{}, label: "a"})
	e.StepFrame()
	state := e.Root().State()

	e.UpdateApp(pad{events: &counter{}, label: "b"})
	e.StepFrame()
	if e.Root().State() != state {
		t.Error("UpdateApp should keep the root state")
	}
	if got := e.RootNode().FindKey("pad").Text; got != "b" {
		t.Errorf("label = %q, want b", got)
	}
}

func TestEngineDispatch(t *testing.T) {
	useFakeClock(t)
	e := engine.New(graphics.Size{Width: 10, Height: 10})
	defer e.Close()

	var requested atomic.Int32
	e.OnNeedsFrame = func() { requested.Add(1) }

	var wg sync.WaitGroup
	ran := 0
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e.Dispatch(func() { ran++ })
		}()
	}
	wg.Wait()

	if !e.NeedsFrame() {
		t.Error("dispatched callbacks should need a frame")
	}
	e.StepFrame()
	if ran != 4 {
		t.Errorf("ran = %d, want 4", ran)
	}
	if got := requested.Load(); got < 4 {
		t.Errorf("OnNeedsFrame called %d times, want at least 4", got)
	}
}
