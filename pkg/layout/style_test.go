package layout

import (
	"testing"

	"github.com/go-drift/fab/pkg/graphics"
)

func TestStyleMergeOverridesSetFields(t *testing.T) {
	base := Style{
		Flex:           1,
		BorderRadius:   50,
		AlignItems:     AlignCenter,
		JustifyContent: AlignCenter,
	}
	over := Style{BorderRadius: 8, Background: graphics.ColorWhite}

	got := base.Merge(over)

	if got.BorderRadius != 8 {
		t.Errorf("BorderRadius = %v, want 8", got.BorderRadius)
	}
	if got.Background != graphics.ColorWhite {
		t.Errorf("Background = %v, want white", got.Background)
	}
	if got.Flex != 1 || got.AlignItems != AlignCenter || got.JustifyContent != AlignCenter {
		t.Errorf("unset override fields must keep base values, got %+v", got)
	}
}

func TestStyleMergeCopiesShadow(t *testing.T) {
	shadow := &Shadow{Color: graphics.ColorBlack, Opacity: 0.8, Radius: 2}
	got := Style{}.Merge(Style{Shadow: shadow})
	shadow.Radius = 10

	if got.Shadow == nil || got.Shadow.Radius != 2 {
		t.Errorf("merged shadow should be a copy, got %+v", got.Shadow)
	}
}

func TestMergeAllOrder(t *testing.T) {
	got := MergeAll(Style{Width: 10},
		&Style{Width: 20, Height: 5},
		nil,
		&Style{Width: 30},
	)
	if got.Width != 30 || got.Height != 5 {
		t.Errorf("MergeAll = %+v, want Width 30 Height 5", got)
	}
}

func TestEnumStrings(t *testing.T) {
	if PositionAbsolute.String() != "absolute" || PositionRelative.String() != "relative" {
		t.Error("unexpected Position strings")
	}
	tests := map[Align]string{
		AlignUnset:   "unset",
		AlignStart:   "start",
		AlignCenter:  "center",
		AlignEnd:     "end",
		AlignStretch: "stretch",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Align(%d).String() = %q, want %q", a, got, want)
		}
	}
}
