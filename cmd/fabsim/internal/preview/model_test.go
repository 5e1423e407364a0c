package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/fab/pkg/core"
	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/graphics"
	"github.com/go-drift/fab/pkg/layout"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestToggleVisibility(t *testing.T) {
	m := New(fab.FAB{})
	defer m.Close()

	m = update(t, m, runeKey('v'))
	if !m.widget.Hidden {
		t.Error("v should hide the button")
	}
	if got := m.Controller().Presence().Target(); got != 0 {
		t.Errorf("presence target = %v, want 0", got)
	}

	m = update(t, m, runeKey('v'))
	if got := m.Controller().Presence().Target(); got != 1 {
		t.Errorf("presence target = %v, want 1", got)
	}
}

func TestCycleSnackOffset(t *testing.T) {
	m := New(fab.FAB{})
	defer m.Close()

	for _, want := range []float64{48, 96, 0} {
		m = update(t, m, runeKey('s'))
		if got := m.Controller().Shift().Target(); got != fab.BaseShift+want {
			t.Errorf("shift target = %v, want %v", got, fab.BaseShift+want)
		}
	}
}

func TestTapCountsClicks(t *testing.T) {
	clicks := 0
	m := New(fab.FAB{OnClickAction: func() { clicks++ }})
	defer m.Close()

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Taps() != 2 || clicks != 2 {
		t.Errorf("taps/clicks = %d/%d, want 2/2", m.Taps(), clicks)
	}
}

func TestQuit(t *testing.T) {
	m := New(fab.FAB{})
	defer m.Close()

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if view := next.View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestViewShowsButton(t *testing.T) {
	m := New(fab.FAB{ButtonColor: "#2196f3"})
	defer m.Close()

	view := m.View()
	for _, want := range []string{"fab preview", "+", "taps: 0", "show/hide"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestRenderButtonGlyph(t *testing.T) {
	surface := &core.Node{Style: layout.Style{Background: graphics.ColorRed}}
	if got := renderButton(surface, 5, 0); !strings.Contains(got, "+") {
		t.Errorf("upright button = %q, want +", got)
	}
	if got := renderButton(surface, 5, -80); !strings.Contains(got, "×") {
		t.Errorf("turned button = %q, want ×", got)
	}
}

func TestDim(t *testing.T) {
	if got := dim(graphics.RGB(200, 100, 50)); got != graphics.RGB(100, 50, 25) {
		t.Errorf("dim = %v, want #643219", got)
	}
}
