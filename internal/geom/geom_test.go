package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsEdges(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, r.Contains(Point{0, 0}))
	assert.True(t, r.Contains(Point{9.99, 9.99}))
	assert.False(t, r.Contains(Point{10, 5}))
	assert.False(t, r.Contains(Point{5, 10}))
}

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}

	assert.Equal(t, Rect{X: 5, Y: 5, Width: 5, Height: 5}, a.Intersect(b))
	assert.Zero(t, a.Intersect(Rect{X: 20, Y: 20, Width: 1, Height: 1}).Area())
}

func TestExpandAndCenter(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 10}

	assert.Equal(t, Rect{X: 0, Y: 0, Width: 40, Height: 30}, r.Expand(10))
	assert.Equal(t, Point{X: 20, Y: 15}, r.Center())
	assert.True(t, r.OverlapsVertically(Rect{Y: 19, Height: 5}))
	assert.False(t, r.OverlapsVertically(Rect{Y: 20, Height: 5}))
}
