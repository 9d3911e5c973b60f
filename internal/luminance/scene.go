package luminance

import (
	"errors"
	"fmt"

	"github.com/Zachkp/portfolio/internal/geom"
)

// Element is a rendered box that may paint a background.
type Element interface {
	Background() string
	// Parent returns the enclosing element, or nil at the top of the tree.
	Parent() Element
}

// Scene resolves the topmost element rendered at a viewport point.
type Scene interface {
	ElementAt(p geom.Point) Element
}

// Box is one measured element of a Layout.
type Box struct {
	Rect       geom.Rect `json:"rect"`
	Background string    `json:"background"`
	// Parent indexes the enclosing box in the same Layout, -1 for none.
	Parent int `json:"parent"`
}

// Layout is a Scene built from boxes listed in paint order: a later box is
// drawn on top of an earlier one.
type Layout struct {
	boxes []Box
}

// NewLayout checks that every parent index points at an earlier box, which
// also rules out cycles.
func NewLayout(boxes []Box) (*Layout, error) {
	for i, b := range boxes {
		if b.Parent < -1 || b.Parent >= i {
			return nil, fmt.Errorf("%w: box %d has parent %d", ErrBadLayout, i, b.Parent)
		}
	}
	return &Layout{boxes: boxes}, nil
}

// ErrBadLayout is returned for a layout whose parent links are invalid.
var ErrBadLayout = errors.New("luminance: invalid layout")

func (l *Layout) ElementAt(p geom.Point) Element {
	for i := len(l.boxes) - 1; i >= 0; i-- {
		if l.boxes[i].Rect.Contains(p) {
			return layoutElement{l: l, i: i}
		}
	}
	return nil
}

type layoutElement struct {
	l *Layout
	i int
}

func (e layoutElement) Background() string { return e.l.boxes[e.i].Background }

func (e layoutElement) Parent() Element {
	p := e.l.boxes[e.i].Parent
	if p < 0 {
		return nil
	}
	return layoutElement{l: e.l, i: p}
}

// DefaultSamples is the number of points sampled across the bar.
const DefaultSamples = 10

// Sample probes n evenly spaced points along the horizontal centre line of
// bar and returns the first opaque background found under each, walking up
// from the topmost element. Points with no resolvable colour are skipped.
func Sample(scene Scene, bar geom.Rect, n int) []Color {
	if n <= 0 {
		n = DefaultSamples
	}
	y := bar.Center().Y
	colors := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		x := bar.Left() + bar.Width*float64(i+1)/float64(n+1)
		if c, ok := backgroundAt(scene, geom.Point{X: x, Y: y}); ok {
			colors = append(colors, c)
		}
	}
	return colors
}

func backgroundAt(scene Scene, p geom.Point) (Color, bool) {
	for el := scene.ElementAt(p); el != nil; el = el.Parent() {
		c, ok := ParseColor(el.Background())
		if !ok || c.Transparent() {
			continue
		}
		return c, true
	}
	return Color{}, false
}
