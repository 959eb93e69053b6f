package drag

// CubicBezier returns the easing function of a CSS cubic-bezier(x1, y1, x2,
// y2) timing curve. x1 and x2 must lie in [0, 1]; y values may overshoot.
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	bez := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*t*a + 3*u*t*t*b + t*t*t
	}
	slope := func(a, b, t float64) float64 {
		u := 1 - t
		return 3*u*u*a + 6*u*t*(b-a) + 3*t*t*(1-b)
	}

	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		// Newton first, bisection if the slope flattens out.
		t := x
		for range 8 {
			d := bez(x1, x2, t) - x
			s := slope(x1, x2, t)
			if d > -1e-7 && d < 1e-7 {
				return bez(y1, y2, t)
			}
			if s > -1e-6 && s < 1e-6 {
				break
			}
			t -= d / s
		}

		lo, hi := 0.0, 1.0
		t = x
		for range 40 {
			v := bez(x1, x2, t)
			if v > x-1e-7 && v < x+1e-7 {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return bez(y1, y2, t)
	}
}

// BackOut is the return animation curve: it overshoots the origin slightly
// and settles.
var BackOut = CubicBezier(0.34, 1.56, 0.64, 1)
