// Package geom has the small amount of rectangle math shared by the layout
// heuristics. Coordinates are CSS pixels with y growing downwards.
package geom

// Point is a position in viewport coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the middle of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Area is zero for empty or inverted rectangles.
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive so that adjacent boxes never both contain a point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X < r.Right() && p.Y >= r.Top() && p.Y < r.Bottom()
}

// OverlapsVertically reports whether r and o share any vertical extent.
func (r Rect) OverlapsVertically(o Rect) bool {
	return r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Intersect returns the overlap of r and o. The result has zero area when
// they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.Left(), o.Left())
	y0 := max(r.Top(), o.Top())
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Expand grows r by m on every side. Negative m shrinks it.
func (r Rect) Expand(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// Translate moves r by dx, dy.
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
