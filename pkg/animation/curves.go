package animation

import "math"

// Curve maps linear progress t in [0, 1] to eased progress.
// Curves are applied by the scheduler to time, never to output ranges.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 {
	return t
}

// Material motion curves.
var (
	// StandardEntry decelerates into place. Used for elements entering
	// the screen: cubic-bezier(0, 0, 0.2, 1).
	StandardEntry = CubicBezier(0.0, 0.0, 0.2, 1.0)

	// SharpExit leaves quickly with a short settle: cubic-bezier(0.4, 0, 0.6, 1).
	SharpExit = CubicBezier(0.4, 0.0, 0.6, 1.0)

	// AccelerateExit speeds up until it leaves: cubic-bezier(0.4, 0, 1, 1).
	AccelerateExit = CubicBezier(0.4, 0.0, 1.0, 1.0)
)

// CubicBezier returns an easing curve matching CSS cubic-bezier().
// (x1,y1) and (x2,y2) are the control points; the curve runs from (0,0)
// to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezierComponent(y1, y2, solveBezierX(x1, x2, t))
	}
}

// solveBezierX finds the curve parameter whose x component equals x.
func solveBezierX(x1, x2, x float64) float64 {
	const epsilon = 1e-7

	// Newton-Raphson converges in a few steps for most curves.
	u := x
	for range 8 {
		err := bezierComponent(x1, x2, u) - x
		if math.Abs(err) < epsilon {
			return clampUnit(u)
		}
		d := bezierSlope(x1, x2, u)
		if math.Abs(d) < epsilon {
			break
		}
		u -= err / d
	}

	// Bisection when the slope flattens out.
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 20 {
		err := bezierComponent(x1, x2, u) - x
		if math.Abs(err) < epsilon {
			break
		}
		if err > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}
	return u
}

// bezierComponent evaluates one axis of a cubic bezier with endpoints 0
// and 1 and control values a, b.
func bezierComponent(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	return math.Min(1, math.Max(0, value))
}
