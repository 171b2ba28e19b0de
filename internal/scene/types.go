package scene

// Shape kinds and the number of coordinates each takes in Points.
const (
	KindHLine    = "hline"    // x1, x2, y
	KindVLine    = "vline"    // x, y1, y2
	KindLine     = "line"     // x1, y1, x2, y2
	KindRect     = "rect"     // x, y, w, h
	KindTriangle = "triangle" // x1, y1, x2, y2, x3, y3
)

var arity = map[string]int{
	KindHLine:    3,
	KindVLine:    3,
	KindLine:     4,
	KindRect:     4,
	KindTriangle: 6,
}

// Scene is a drawing request: a canvas size, a background and shapes
// painted in order.
type Scene struct {
	Name       string  `json:"name"`
	Width      uint32  `json:"width"`
	Height     uint32  `json:"height"`
	Background string  `json:"background"`
	Shapes     []Shape `json:"shapes"`
}

// Shape is one drawing primitive. Lines use Stroke; rects and triangles
// are filled with Fill and outlined with Stroke, and default to a black
// fill when neither is set.
type Shape struct {
	Type   string `json:"type"`
	Points []int  `json:"points"`
	Stroke string `json:"stroke,omitempty"`
	Fill   string `json:"fill,omitempty"`
}
