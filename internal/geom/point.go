package geom

// Point2D is a pair of unsigned 16-bit screen coordinates.
//
// Add, Sub and Neg work in the coordinate's own unsigned domain and wrap
// modulo 2^16. Use Delta when a signed difference is needed and SubSat
// when a result must stay on screen.
type Point2D struct {
	X, Y uint16
}

// Pt is shorthand for Point2D{x, y}.
func Pt(x, y uint16) Point2D {
	return Point2D{X: x, Y: y}
}

func (p Point2D) Add(q Point2D) Point2D {
	return Point2D{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point2D) Neg() Point2D {
	return Point2D{X: -p.X, Y: -p.Y}
}

// SubSat subtracts q, clamping each coordinate at zero.
func (p Point2D) SubSat(q Point2D) Point2D {
	var r Point2D
	if p.X > q.X {
		r.X = p.X - q.X
	}
	if p.Y > q.Y {
		r.Y = p.Y - q.Y
	}
	return r
}

// Delta returns p - q widened to signed ints.
func (p Point2D) Delta(q Point2D) (dx, dy int) {
	return int(p.X) - int(q.X), int(p.Y) - int(q.Y)
}
