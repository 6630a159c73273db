package fuzzy

// Degree returns the membership of x in the shape with breakpoints (a, b, c).
//
//   - a == b (left shoulder): 1 for x <= a, (c-x)/(c-b) on (a, c), 0 for x >= c.
//   - b == c (right shoulder): 1 for x >= c, (x-a)/(b-a) on (a, c), 0 for x <= a.
//   - otherwise (triangle): (x-a)/(b-a) on (a, b), exactly 1 at b,
//     (c-x)/(c-b) on (b, c), 0 outside [a, c].
//
// Zero-width ratios yield 0 instead of dividing by zero. Breakpoints must
// satisfy a <= b <= c; Degree does not check this (see NewShape).
func Degree(x, a, b, c float64) float64 {
	if a == b {
		switch {
		case x <= a:
			return 1
		case x < c:
			if c == b {
				return 0
			}
			return (c - x) / (c - b)
		default:
			return 0
		}
	}

	if b == c {
		switch {
		case x >= c:
			return 1
		case x > a:
			if b == a {
				return 0
			}
			return (x - a) / (b - a)
		default:
			return 0
		}
	}

	switch {
	case a < x && x < b:
		return (x - a) / (b - a)
	case b < x && x < c:
		return (c - x) / (c - b)
	case x == b:
		return 1
	default:
		return 0
	}
}

// Point is one sample of a membership curve.
type Point struct {
	X      float64 `json:"x"`
	Degree float64 `json:"degree"`
}

// Sample evaluates s at n evenly spaced points from lo to hi, both ends
// included. n <= 0 yields nil; n == 1 yields the single point lo.
func Sample(s Shape, lo, hi float64, n int) []Point {
	if n <= 0 {
		return nil
	}
	pts := make([]Point, n)
	if n == 1 {
		pts[0] = Point{X: lo, Degree: s.Degree(lo)}
		return pts
	}
	step := (hi - lo) / float64(n-1)
	for i := 0; i < n-1; i++ {
		x := lo + float64(i)*step
		pts[i] = Point{X: x, Degree: s.Degree(x)}
	}
	// pin the last point to hi rather than accumulating rounding error
	pts[n-1] = Point{X: hi, Degree: s.Degree(hi)}

	return pts
}
