package scenario

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/fab/pkg/fab"
	"github.com/go-drift/fab/pkg/platform"
	"github.com/go-drift/fab/pkg/touch"
)

const hideShowTap = `
platform:
  os: android
  apiLevel: 29
fab:
  buttonColor: "#2196f3"
steps:
  - at: 100ms
    visible: false
  - at: 400ms
    visible: true
    offset: 48
  - at: 800ms
    tap: true
duration: 1s
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(hideShowTap))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(s.Steps))
	}
	if got := s.Steps[1].At.Std(); got != 400*time.Millisecond {
		t.Errorf("step 2 at = %v, want 400ms", got)
	}
	if got := s.Steps[1].String(); got != "show offset=48" {
		t.Errorf("step 2 = %q, want %q", got, "show offset=48")
	}
	if s.Length() != time.Second {
		t.Errorf("Length = %v, want 1s", s.Length())
	}
	id, err := s.Platform.Identity()
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	if id != platform.Android(29) {
		t.Errorf("identity = %v, want android/29", id)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{"bad duration", "steps:\n  - at: soon\n", "invalid duration"},
		{"out of order", "steps:\n  - at: 2s\n  - at: 1s\n", "time order"},
		{"negative", "steps:\n  - at: -5ms\n", "negative time"},
		{"unknown os", "platform:\n  os: beos\n", "unknown platform OS"},
		{"missing os", "platform:\n  apiLevel: 21\n", "os is required"},
		{"bad release", "platform:\n  os: ios\n  release: latest\n", "invalid"},
		{"bad color", "fab:\n  buttonColor: blurple\n", "invalid buttonColor"},
		{"bad viewport", "viewport:\n  width: -1\n", "viewport"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestDurationForms(t *testing.T) {
	s, err := Parse([]byte("steps:\n  - at: 250\n  - at: 1.5s\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.Steps[0].At.Std(); got != 250*time.Millisecond {
		t.Errorf("bare integer = %v, want 250ms", got)
	}
	if got := s.Steps[1].At.Std(); got != 1500*time.Millisecond {
		t.Errorf("duration string = %v, want 1.5s", got)
	}
	if got := s.Length(); got != 2*time.Second {
		t.Errorf("default length = %v, want 2s", got)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(hideShowTap), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(hideShowTap))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var samples []Sample
	if err := Run(s, 50*time.Millisecond, func(smp Sample) { samples = append(samples, smp) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(samples) != 21 {
		t.Fatalf("samples = %d, want 21", len(samples))
	}

	at := func(d time.Duration) Sample { return samples[int(d/(50*time.Millisecond))] }

	first := at(0)
	if first.Presence != 1 || first.Size != fab.ButtonSize || first.Bottom != fab.BaseShift || first.Animating {
		t.Errorf("first sample = %+v, want shown at rest", first)
	}
	if first.Variant != touch.Ripple {
		t.Errorf("variant = %v, want ripple on android 29", first.Variant)
	}

	if got := at(100 * time.Millisecond); len(got.Steps) != 1 || got.Steps[0] != "hide" {
		t.Errorf("steps at 100ms = %v, want [hide]", got.Steps)
	}
	if got := at(350 * time.Millisecond); got.Presence != 0 || got.Rotation != -90 {
		t.Errorf("sample at 350ms = %+v, want hidden", got)
	}
	if got := at(700 * time.Millisecond); got.Presence != 1 || got.Bottom != 68 {
		t.Errorf("sample at 700ms = %+v, want shown at 68", got)
	}

	tapped := at(800 * time.Millisecond)
	if tapped.Taps != 1 {
		t.Errorf("taps at 800ms = %d, want 1", tapped.Taps)
	}
	if len(tapped.Steps) != 1 || tapped.Steps[0] != "tap" {
		t.Errorf("steps at 800ms = %v, want [tap]", tapped.Steps)
	}
}

func TestRunTapWhileHidden(t *testing.T) {
	s, err := Parse([]byte(`
fab:
  visible: false
steps:
  - at: 0ms
    tap: true
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var samples []Sample
	if err := Run(s, 100*time.Millisecond, func(smp Sample) { samples = append(samples, smp) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := samples[0].Steps; len(got) != 1 || got[0] != "tap (missed)" {
		t.Errorf("steps = %v, want [tap (missed)]", got)
	}
	if samples[len(samples)-1].Taps != 0 {
		t.Error("a hidden button should not be tapped")
	}
}

func TestRunTapAtStart(t *testing.T) {
	s, err := Parse([]byte(`
steps:
  - at: 0ms
    tap: true
duration: 100ms
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var samples []Sample
	if err := Run(s, 50*time.Millisecond, func(smp Sample) { samples = append(samples, smp) }); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := samples[0].Steps; len(got) != 1 || got[0] != "tap" {
		t.Errorf("steps at 0s = %v, want [tap]", got)
	}
	if samples[0].Taps != 1 || samples[0].Presence != 1 {
		t.Errorf("first sample = %+v, want one tap on a shown button", samples[0])
	}
}

func TestRunRejectsBadFrame(t *testing.T) {
	if err := Run(&Scenario{}, 0, func(Sample) {}); err == nil {
		t.Error("expected error for a zero frame interval")
	}
}

func TestRunSnackbarScenario(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "snackbar.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var last Sample
	maxBottom := 0.0
	err = Run(s, 16*time.Millisecond, func(smp Sample) {
		last = smp
		maxBottom = max(maxBottom, smp.Bottom)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if maxBottom != 68 {
		t.Errorf("highest bottom = %v, want 68", maxBottom)
	}
	if last.Taps != 1 || last.Presence != 0 || last.Bottom != 20 || last.Animating {
		t.Errorf("final sample = %+v, want hidden at rest after one tap", last)
	}
	if last.Variant != touch.Ripple {
		t.Errorf("variant = %v, want ripple on lollipop", last.Variant)
	}
}
