package present

// Interp maps v through a piecewise-linear curve defined by matching input
// and output control points. Inputs must be strictly increasing. When clamp
// is true the result is pinned to the edge output values; otherwise the
// first and last segments extrapolate linearly.
func Interp(v float64, in, out []float64, clamp bool) float64 {
	if len(in) < 2 || len(in) != len(out) {
		panic("present: Interp needs matching control point slices of length >= 2")
	}

	if v <= in[0] {
		if clamp {
			return out[0]
		}
		return extrapolate(v, in[0], in[1], out[0], out[1])
	}
	if v >= in[len(in)-1] {
		n := len(in)
		if clamp {
			return out[n-1]
		}
		return extrapolate(v, in[n-2], in[n-1], out[n-2], out[n-1])
	}

	for i := 1; i < len(in); i++ {
		if v <= in[i] {
			return extrapolate(v, in[i-1], in[i], out[i-1], out[i])
		}
	}
	return out[len(out)-1]
}

func extrapolate(v, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return y0 + (v-x0)*(y1-y0)/(x1-x0)
}
