package geom

// Triangle holds three vertices sorted top to bottom:
// Verts[0].Y <= Verts[1].Y <= Verts[2].Y. Vertices with equal Y keep the
// order the sort left them in; there is no tie-break on X.
type Triangle struct {
	Verts [3]Point2D
}

// NewTriangle builds a triangle from coordinates given in any order.
func NewTriangle(x1, y1, x2, y2, x3, y3 uint16) Triangle {
	return TriangleOf(Pt(x1, y1), Pt(x2, y2), Pt(x3, y3))
}

// TriangleOf builds a triangle from three points given in any order.
func TriangleOf(a, b, c Point2D) Triangle {
	t := Triangle{Verts: [3]Point2D{a, b, c}}
	v := &t.Verts

	if v[0].Y > v[1].Y {
		v[0], v[1] = v[1], v[0]
	}
	if v[1].Y > v[2].Y {
		v[1], v[2] = v[2], v[1]
	}
	// The second swap may have moved a smaller Y into slot 1.
	if v[0].Y > v[1].Y {
		v[0], v[1] = v[1], v[0]
	}
	return t
}

func (t Triangle) Top() Point2D    { return t.Verts[0] }
func (t Triangle) Mid() Point2D    { return t.Verts[1] }
func (t Triangle) Bottom() Point2D { return t.Verts[2] }

// IsFlatTop reports whether the two upper vertices share a row.
func (t Triangle) IsFlatTop() bool { return t.Verts[0].Y == t.Verts[1].Y }

// IsFlatBottom reports whether the two lower vertices share a row.
func (t Triangle) IsFlatBottom() bool { return t.Verts[1].Y == t.Verts[2].Y }

// Degenerate reports whether the triangle has zero area.
func (t Triangle) Degenerate() bool {
	ax, ay := t.Verts[1].Delta(t.Verts[0])
	bx, by := t.Verts[2].Delta(t.Verts[0])
	return ax*by-ay*bx == 0
}
