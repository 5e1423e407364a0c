// Package preview is a terminal preview of the floating action button.
//
// The model hosts a real button on an engine and steps it on a frame
// tick, so the animation runs on wall-clock time exactly as it would in
// an app. The button is drawn as a block of cells whose width follows the
// button size and whose row follows the bottom offset.
package preview

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/engine"
	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/touch"
)

// Screen geometry of the preview in terminal cells.
const (
	screenCols = 36
	screenRows = 14
	// pxPerCol and pxPerRow convert logical pixels to cells.
	pxPerCol = 10.0
	pxPerRow = 16.0
)

// FrameInterval is the wall-clock time between preview frames.
const FrameInterval = 16 * time.Millisecond

// SnackOffsets are the offsets cycled by the offset key.
var SnackOffsets = []float64{0, 48, 96}

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the Bubbletea model of the preview.
type Model struct {
	engine *engine.Engine
	widget fab.FAB
	offset int
	taps   *int

	keys     keyMap
	help     help.Model
	presence progress.Model
	quitting bool
}

// New creates a preview of the given button. Its OnClickAction is
// wrapped so the preview can count taps.
func New(widget fab.FAB) Model {
	taps := new(int)
	onClick := widget.OnClickAction
	widget.OnClickAction = func() {
		*taps++
		if onClick != nil {
			onClick()
		}
	}

	eng := engine.New(graphics.Size{Width: screenCols * pxPerCol, Height: screenRows * pxPerRow})
	eng.SetApp(widget)
	eng.StepFrame()

	return Model{
		engine: eng,
		widget: widget,
		offset: indexOf(SnackOffsets, widget.SnackOffset),
		taps:   taps,
		keys:   defaultKeys(),
		help:   help.New(),
		presence: progress.New(
			progress.WithScaledGradient("#FF8C00", "#FF5F1F"),
			progress.WithoutPercentage(),
			progress.WithWidth(20),
		),
	}
}

func indexOf(values []float64, v float64) int {
	for i, x := range values {
		if x == v {
			return i
		}
	}
	return 0
}

// Close releases the engine.
func (m Model) Close() {
	m.engine.Close()
}

// Controller returns the controller of the hosted button.
func (m Model) Controller() *fab.Controller {
	return fab.ControllerOf(m.engine.Root())
}

// Taps returns the number of completed taps.
func (m Model) Taps() int {
	return *m.taps
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(frameCmd(), tea.SetWindowTitle("fabsim preview"))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		case key.Matches(msg, m.keys.Toggle):
			m.widget.Hidden = !m.widget.Hidden
			m.engine.UpdateApp(m.widget)
		case key.Matches(msg, m.keys.Offset):
			m.offset = (m.offset + 1) % len(SnackOffsets)
			m.widget.SnackOffset = SnackOffsets[m.offset]
			m.engine.UpdateApp(m.widget)
		case key.Matches(msg, m.keys.Tap):
			m.tap()
		}
		return m, nil

	case frameMsg:
		m.engine.StepFrame()
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// tap presses and releases the centre of the button surface.
func (m Model) tap() bool {
	surface := m.engine.RootNode().FindKey(fab.KeySurface)
	if surface == nil {
		return false
	}
	at := surface.Bounds.Center()
	if !m.engine.HandlePointer(engine.PointerEvent{Phase: engine.PointerDown, Position: at}) {
		return false
	}
	m.engine.HandlePointer(engine.PointerEvent{Phase: engine.PointerUp, Position: at})
	return true
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	c := m.Controller()

	var b strings.Builder
	b.WriteString(titleStyle.Render("fab preview"))
	b.WriteString("\n")
	b.WriteString(screenStyle.Render(m.renderScreen()))
	b.WriteString("\n")

	variant, _ := touch.VariantOf(m.engine.RootNode().FindKey(fab.KeySurface))
	b.WriteString(m.presence.ViewAs(c.Presence().Value()))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  size %4.1f  rot %5.1f°  bottom %5.1f  %s",
		c.Size(), c.Rotation(), c.BottomOffset(), variant)))
	b.WriteString("\n")
	b.WriteString(tapStyle.Render(fmt.Sprintf("taps: %d", *m.taps)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderScreen draws the laid-out button onto a grid of cells.
func (m Model) renderScreen() string {
	blank := strings.Repeat(" ", screenCols)
	rows := make([]string, screenRows)
	for i := range rows {
		rows[i] = blank
	}

	button := m.engine.RootNode().FindKey(fab.KeyButton)
	surface := m.engine.RootNode().FindKey(fab.KeySurface)
	if button == nil || surface == nil || button.Bounds.IsEmpty() {
		return strings.Join(rows, "\n")
	}

	cols := max(1, int(math.Round(button.Bounds.Width()/pxPerCol)))
	left := int(math.Round(button.Bounds.Left / pxPerCol))
	row := int(button.Bounds.Center().Y / pxPerRow)
	row = min(max(row, 0), screenRows-1)
	left = min(max(left, 0), screenCols-cols)

	rows[row] = blank[:left] + renderButton(surface, cols, m.Controller().Rotation()) + blank[left+cols:]
	return strings.Join(rows, "\n")
}

// renderButton draws the surface as a coloured cell run with the icon
// in the middle. A quarter turn or more shows the icon as "×".
func renderButton(surface *core.Node, cols int, rotation float64) string {
	glyph := "+"
	if rotation < -45 {
		glyph = "×"
	}
	fill := surface.Style.Background
	if surface.Ink != nil || surface.EffectiveOpacity() < 1 {
		fill = dim(fill)
	}

	pad := (cols - 1) / 2
	cells := strings.Repeat(" ", pad) + glyph + strings.Repeat(" ", cols-1-pad)
	if cols < 3 {
		cells = strings.Repeat(" ", cols)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex(fill))).
		Foreground(lipgloss.Color("#FFFFFF")).
		Render(cells)
}

// hex formats a color as #rrggbb, dropping alpha.
func hex(c graphics.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// dim blends a color halfway to black, standing in for press feedback.
func dim(c graphics.Color) graphics.Color {
	r, g, b, _ := c.RGBA()
	return graphics.RGB(r/2, g/2, b/2)
}
