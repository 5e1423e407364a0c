package scenario

import (
	"errors"
	"sync"
	"time"

	"github.com/go-drift/fab/pkg/animation"
	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/engine"
	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/platform"
	"github.com/go-drift/fab/pkg/touch"
)

// DefaultViewport is the screen used when a scenario gives none.
var DefaultViewport = graphics.Size{Width: 360, Height: 640}

// Sample is the button state at one frame.
type Sample struct {
	Frame    int
	At       time.Duration
	Presence float64
	Shift    float64
	Size     float64
	Rotation float64
	ScaleX   float64
	Bottom   float64
	Variant  touch.Variant
	// Taps counts OnClickAction calls so far.
	Taps int
	// Steps describes the steps applied just before this frame.
	Steps []string
	// Animating reports whether either axis is moving.
	Animating bool
	// Root is the laid-out node tree. It is only valid during emit.
	Root *core.Node
}

// simClock is a manually advanced animation clock.
type simClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *simClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *simClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Run replays the scenario on simulated time, sampling every frame
// interval from zero through Length inclusive. Steps due at a sample
// time are applied before that frame, so a tap at zero lands on the
// initial layout. Run installs its own animation clock and platform for
// the duration of the call, so it must not run concurrently with other
// animation work.
func Run(s *Scenario, frame time.Duration, emit func(Sample)) error {
	if frame <= 0 {
		return errors.New("frame interval must be positive")
	}

	clk := &simClock{now: time.Unix(0, 0)}
	prevClock := animation.SetClock(clk)
	defer animation.SetClock(prevClock)

	if s.Platform != nil {
		id, err := s.Platform.Identity()
		if err != nil {
			return err
		}
		prev := platform.SetCurrent(id)
		defer platform.SetCurrent(prev)
	}

	size := DefaultViewport
	if s.Viewport.Width > 0 {
		size.Width = s.Viewport.Width
	}
	if s.Viewport.Height > 0 {
		size.Height = s.Viewport.Height
	}

	taps := 0
	widget := s.FAB.Widget(func() { taps++ })

	eng := engine.New(size)
	defer eng.Close()
	eng.SetApp(widget)
	// Lay out once so steps at time zero see the button.
	eng.StepFrame()

	var pointer int64
	next := 0
	length := s.Length()
	for at, n := time.Duration(0), 0; at <= length; at, n = at+frame, n+1 {
		if n > 0 {
			clk.advance(frame)
		}

		var applied []string
		for next < len(s.Steps) && s.Steps[next].At.Std() <= at {
			step := s.Steps[next]
			next++
			if step.Visible != nil || step.Offset != nil {
				if step.Visible != nil {
					widget.Hidden = !*step.Visible
				}
				if step.Offset != nil {
					widget.SnackOffset = *step.Offset
				}
				eng.UpdateApp(widget)
			}
			desc := step.String()
			if step.Tap {
				pointer++
				if !tap(eng, pointer) {
					desc += " (missed)"
				}
			}
			applied = append(applied, desc)
		}

		eng.StepFrame()
		emit(sample(eng, n, at, taps, applied))
	}
	return nil
}

// tap presses and releases the centre of the button surface.
func tap(eng *engine.Engine, pointer int64) bool {
	surface := eng.RootNode().FindKey(fab.KeySurface)
	if surface == nil {
		return false
	}
	at := surface.Bounds.Center()
	if !eng.HandlePointer(engine.PointerEvent{ID: pointer, Phase: engine.PointerDown, Position: at}) {
		return false
	}
	eng.HandlePointer(engine.PointerEvent{ID: pointer, Phase: engine.PointerUp, Position: at})
	return true
}

func sample(eng *engine.Engine, n int, at time.Duration, taps int, steps []string) Sample {
	c := fab.ControllerOf(eng.Root())
	variant, _ := touch.VariantOf(eng.RootNode().FindKey(fab.KeySurface))
	return Sample{
		Frame:     n,
		At:        at,
		Presence:  c.Presence().Value(),
		Shift:     c.Shift().Value(),
		Size:      c.Size(),
		Rotation:  c.Rotation(),
		ScaleX:    c.ScaleX(),
		Bottom:    c.BottomOffset(),
		Variant:   variant,
		Taps:      taps,
		Steps:     steps,
		Animating: c.IsAnimating(),
		Root:      eng.RootNode(),
	}
}
