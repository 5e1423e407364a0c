package animation

import "github.com/go-drift/fab/pkg/graphics"

// Tween maps a driving value to an output range.
//
// The mapping is linear in the driving value; easing belongs to the
// [Transition] that moves the driving value, not to the tween.
type Tween[T any] struct {
	// Begin is the output when t = 0.
	Begin T
	// End is the output when t = 1.
	End T
	// Lerp interpolates between Begin and End at t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t. t is not clamped, so
// driving values outside [0, 1] extrapolate.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value at the value's current position.
func (tw *Tween[T]) Transform(v *Value) T {
	return tw.Evaluate(v.Value())
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates each ARGB channel of two colors.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	channel := func(x, y uint8) uint8 {
		return uint8(clampByte(LerpFloat64(float64(x), float64(y), t)))
	}
	return graphics.RGBA8(channel(ar, br), channel(ag, bg), channel(ab, bb), channel(aa, ba))
}

func clampByte(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v + 0.5
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}
