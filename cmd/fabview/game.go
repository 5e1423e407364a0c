package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/go-drift/fab/pkg/engine"
	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/touch"
)

// mousePointer is the pointer ID used for the mouse. Touch IDs are
// offset past it.
const mousePointer = 0

// snackOffsets are cycled by the S key.
var snackOffsets = []float64{0, 48, 96}

// Game hosts a button on an engine and renders it with ebiten.
type Game struct {
	engine *engine.Engine
	widget fab.FAB
	offset int
	taps   int

	touchIDs []ebiten.TouchID
}

// NewGame mounts widget on a screen of the given logical size.
func NewGame(widget fab.FAB, size graphics.Size) *Game {
	g := &Game{engine: engine.New(size)}
	onClick := widget.OnClickAction
	widget.OnClickAction = func() {
		g.taps++
		if onClick != nil {
			onClick()
		}
	}
	g.widget = widget
	g.engine.SetApp(widget)
	g.engine.StepFrame()
	return g
}

// Close releases the engine.
func (g *Game) Close() {
	g.engine.Close()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cycleOffset()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pointer(mousePointer, engine.PointerDown, x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.pointer(mousePointer, engine.PointerUp, x, y)
	}

	g.touchIDs = inpututil.AppendJustPressedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.pointer(int64(id)+1, engine.PointerDown, x, y)
	}
	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		g.pointer(int64(id)+1, engine.PointerUp, x, y)
	}

	g.engine.StepFrame()
	return nil
}

func (g *Game) toggle() {
	g.widget.Hidden = !g.widget.Hidden
	g.engine.UpdateApp(g.widget)
}

func (g *Game) cycleOffset() {
	g.offset = (g.offset + 1) % len(snackOffsets)
	g.widget.SnackOffset = snackOffsets[g.offset]
	g.engine.UpdateApp(g.widget)
}

func (g *Game) pointer(id int64, phase engine.PointerPhase, x, y int) bool {
	return g.engine.HandlePointer(engine.PointerEvent{
		ID:       id,
		Phase:    phase,
		Position: graphics.Offset{X: float64(x), Y: float64(y)},
	})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toNRGBA(backgroundColor, 1))
	drawNode(screen, g.engine.RootNode(), 1, graphics.IdentityTransform)
	ebitenutil.DebugPrintAt(screen, g.status(), 8, 8)
}

func (g *Game) status() string {
	c := fab.ControllerOf(g.engine.Root())
	variant, _ := touch.VariantOf(g.engine.RootNode().FindKey(fab.KeySurface))
	return fmt.Sprintf("presence %.2f  bottom %.0f  %s  taps %d\nV show/hide  S offset  click tap  Q quit",
		c.Presence().Value(), c.BottomOffset(), variant, g.taps)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.engine.Size()
	return int(size.Width), int(size.Height)
}
